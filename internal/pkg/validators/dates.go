package validators

import "time"

// ISODateLayout is the layout of calendar dates on the wire and in storage.
const ISODateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date.
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(ISODateLayout, value)
}

// FormatISODate renders the calendar day of t in its own location.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}
