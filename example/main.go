package main

import (
	"os"
	"time"

	tzsync "github.com/Egwau-Godfrey/time-zone-sync"
	"github.com/rs/zerolog"
)

// zone pair picked up from the environment so the example is reusable
func zones() (string, string) {
	source := os.Getenv("SOURCE_TZ")
	if source == "" {
		source = "America/New_York"
	}
	target := os.Getenv("TARGET_TZ")
	if target == "" {
		target = "Europe/London"
	}
	return source, target
}

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	source, target := zones()
	converter, err := tzsync.New(source, target)
	if err != nil {
		log.Fatal().Err(err).Msg("converter setup failed")
	}

	srcNow, err := converter.CurrentTimeInSource()
	if err != nil {
		log.Fatal().Err(err).Msg("source time query failed")
	}
	dstNow, err := converter.CurrentTimeInTarget()
	if err != nil {
		log.Fatal().Err(err).Msg("target time query failed")
	}

	log.Info().
		Str("source", srcNow.Format(time.RFC1123)).
		Str("target", dstNow.Format(time.RFC1123)).
		Msg("current time")

	info, err := converter.TimeZoneInfo()
	if err != nil {
		log.Fatal().Err(err).Msg("timezone info query failed")
	}
	diff, err := converter.TimeDifference()
	if err != nil {
		log.Fatal().Err(err).Msg("time difference query failed")
	}

	log.Info().
		Str("zone", info.Name).
		Dur("utc_offset", info.Offset).
		Bool("dst", info.IsDST).
		Float64("hours_ahead_of_target", diff).
		Msg("source zone")

	// convert a wall-clock string from the source zone
	meeting, err := converter.ParseInSource("2006-01-02 15:04", "2024-11-04 10:00")
	if err != nil {
		log.Fatal().Err(err).Msg("parse failed")
	}
	converted, err := converter.Convert(meeting)
	if err != nil {
		log.Fatal().Err(err).Msg("convert failed")
	}

	log.Info().
		Str("when_there", converted.Format("2006-01-02 15:04 MST")).
		Msgf("10:00 in %s is", source)
}
