package conv

import (
	"time"
)

// Converter implements type conversions with configurable options.
// It is safe for concurrent use by multiple goroutines.
type Converter struct {
	dateFormats []string // Custom date formats for time parsing
	trimStrings bool     // If true, trims whitespace from strings before conversion
	nilAsZero   bool     // If true, nil values return zero value instead of error
	emptyAsZero bool     // If true, empty strings return zero value instead of error
}

// NewConverter creates a new Converter with the package's default settings:
// nil and empty-string inputs convert to the target's zero value, and
// strings are trimmed before numeric/time parsing.
func NewConverter() *Converter {
	return &Converter{
		dateFormats: defaultDateFormats(),
		nilAsZero:   true,
		emptyAsZero: true,
		trimStrings: true,
	}
}

// defaultDateFormats returns the layouts tried, in order, when parsing a
// string into a time.Time.
func defaultDateFormats() []string {
	return []string{
		time.RFC3339,
		time.RFC3339Nano,
		time.RFC1123,
		time.RFC1123Z,
		time.RFC822,
		time.RFC822Z,
		time.RFC850,
		time.ANSIC,
		time.UnixDate,
		time.RubyDate,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006/01/02",
		"02-01-2006",
		"02/01/2006",
		"01-02-2006",
		"01/02/2006",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
		"2 January 2006",
		"Mon, 02 Jan 2006 15:04:05",
		"Mon, 2 Jan 2006 15:04:05",
		"02 Jan 2006 15:04 MST",
		"2 Jan 2006 15:04:05",
		"2 Jan 2006 15:04:05 MST",
	}
}
