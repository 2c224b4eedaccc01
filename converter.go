// Package tzsync converts instants between two named IANA timezones and
// reports timezone metadata (UTC offset, DST status, hour difference).
//
// Zone names resolve against the zoneinfo database embedded in 4d63.com/tz,
// so results do not depend on the host OS shipping tzdata.
package tzsync

import (
	"fmt"
	"strings"
	"time"

	"4d63.com/tz"
	"github.com/pkg/errors"
	"github.com/prometheus/common/log"
)

// TimeZoneConverter converts times between a fixed source and target timezone.
// It is immutable after construction and safe for concurrent use.
type TimeZoneConverter struct {
	sourceTZ *time.Location // zone to convert from
	targetTZ *time.Location // zone to convert to

	clock Clock // supplies "now" for the current-time queries
}

// TimeZoneInfo describe the source timezone at a single instant
type TimeZoneInfo struct {
	Name   string        // canonical zone name, e.g. "America/New_York"
	Offset time.Duration // offset from UTC, positive east of UTC
	// IsDST reports whether the zone abbreviation at the instant ends in
	// "DT" (EDT, PDT, ...). Zones that do not follow this US-style suffix
	// convention read false even mid-shift, so treat this as a hint, not
	// an authoritative DST detector.
	IsDST bool
}

// New makes a converter from two IANA zone names, source checked before target
func New(source, target string) (*TimeZoneConverter, error) {
	return NewWithClock(source, target, SystemClock{})
}

// NewWithClock is New with the clock supplied by the caller, so tests can
// freeze time. A nil clock falls back to the system clock.
func NewWithClock(source, target string, clk Clock) (*TimeZoneConverter, error) {
	if clk == nil {
		clk = SystemClock{}
	}

	sourceTZ, err := tz.LoadLocation(source)
	if err != nil {
		log.Errorf("Resolve timezone failed (%s)\n", source)
		return nil, &InvalidTimeZoneError{Name: source, cause: errors.Wrapf(err, "load location %q", source)}
	}
	targetTZ, err := tz.LoadLocation(target)
	if err != nil {
		log.Errorf("Resolve timezone failed (%s)\n", target)
		return nil, &InvalidTimeZoneError{Name: target, cause: errors.Wrapf(err, "load location %q", target)}
	}

	log.Infof("Timezone converter ready (%s -> %s)\n", sourceTZ, targetTZ)

	return &TimeZoneConverter{
		sourceTZ: sourceTZ,
		targetTZ: targetTZ,
		clock:    clk,
	}, nil
}

// Convert re-expresses an instant in the target timezone. The absolute
// instant never changes, only the zone it is rendered in; the instant does
// not need to be in the configured source zone. The error is always nil
// today and exists so callers survive a future rule provider that can fail.
func (tc *TimeZoneConverter) Convert(t time.Time) (time.Time, error) {
	return t.In(tc.targetTZ), nil
}

// CurrentTimeInSource returns the clock's current instant in the source timezone
func (tc *TimeZoneConverter) CurrentTimeInSource() (time.Time, error) {
	return tc.clock.Now().In(tc.sourceTZ), nil
}

// CurrentTimeInTarget returns the clock's current instant in the target timezone
func (tc *TimeZoneConverter) CurrentTimeInTarget() (time.Time, error) {
	return tc.clock.Now().In(tc.targetTZ), nil
}

// TimeZoneInfo reports the source zone's name, UTC offset and DST flag for
// the current instant. Nothing is cached, offsets move at DST boundaries.
func (tc *TimeZoneConverter) TimeZoneInfo() (TimeZoneInfo, error) {
	now := tc.clock.Now().In(tc.sourceTZ)
	abbr, offsetSeconds := now.Zone()

	return TimeZoneInfo{
		Name:   tc.sourceTZ.String(),
		Offset: time.Duration(offsetSeconds) * time.Second,
		IsDST:  strings.HasSuffix(abbr, "DT"),
	}, nil
}

// TimeDifference returns source offset minus target offset in hours for the
// current instant. Positive means the source local clock reads ahead of the
// target; fractional for zones on 30 or 45 minute offsets. Both offsets are
// taken at the same observation of now.
func (tc *TimeZoneConverter) TimeDifference() (float64, error) {
	now := tc.clock.Now()

	_, sourceOffset := now.In(tc.sourceTZ).Zone()
	_, targetOffset := now.In(tc.targetTZ).Zone()

	return float64(sourceOffset-targetOffset) / 3600.0, nil
}

// ParseInSource parses a wall-clock string as a time in the source timezone,
// time.ParseInLocation style
func (tc *TimeZoneConverter) ParseInSource(layout, value string) (time.Time, error) {
	return tc.parseIn(layout, value, tc.sourceTZ)
}

// ParseInTarget parses a wall-clock string as a time in the target timezone
func (tc *TimeZoneConverter) ParseInTarget(layout, value string) (time.Time, error) {
	return tc.parseIn(layout, value, tc.targetTZ)
}

func (tc *TimeZoneConverter) parseIn(layout, value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, &ParseError{
			Detail: fmt.Sprintf("%q does not match layout %q", value, layout),
			cause:  errors.Wrapf(err, "parse %q in %s", value, loc),
		}
	}
	return t, nil
}
