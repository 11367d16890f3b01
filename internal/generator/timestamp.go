package generator

import "time"

const (
	timestampLayout      = "2006-01-02T15:04:05"
	timestampMicroLayout = "2006-01-02T15:04:05.000000"
)

// FormatTimestamp renders t as wall-clock time in its own location followed by
// a literal "Z". The time is not converted to UTC; consumers only rely on the
// shape. Microseconds are included only when non-zero.
func FormatTimestamp(t time.Time) string {
	layout := timestampLayout
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = timestampMicroLayout
	}
	return t.Format(layout) + "Z"
}

// ParseTimestamp reverses FormatTimestamp, interpreting the wall-clock value in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	trimmed := value
	if n := len(trimmed); n > 0 && trimmed[n-1] == 'Z' {
		trimmed = trimmed[:n-1]
	}
	layout := timestampLayout
	if len(trimmed) > len(timestampLayout) {
		layout = timestampMicroLayout
	}
	return time.ParseInLocation(layout, trimmed, loc)
}
