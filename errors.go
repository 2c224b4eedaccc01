package tzsync

// InvalidTimeZoneError reports a zone name that does not resolve in the
// timezone rule database. Raised at construction only, never at query time.
type InvalidTimeZoneError struct {
	Name string // the offending zone name as given

	cause error
}

func (e *InvalidTimeZoneError) Error() string {
	return "invalid timezone: " + e.Name
}

// Unwrap exposes the rule database's own resolution error
func (e *InvalidTimeZoneError) Unwrap() error {
	return e.cause
}

// ParseError reports a datetime string that could not be parsed.
type ParseError struct {
	Detail string

	cause error
}

func (e *ParseError) Error() string {
	return "parse failed: " + e.Detail
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

// ConversionError reports a failed re-expression of an instant in another
// zone. No operation produces it today, the stdlib conversion is total for
// valid instants, but it stays exported so callers can handle it without a
// breaking change if a future rule provider can fail.
type ConversionError struct {
	Detail string

	cause error
}

func (e *ConversionError) Error() string {
	return "conversion failed: " + e.Detail
}

func (e *ConversionError) Unwrap() error {
	return e.cause
}
