package datatype

// FormatSettings controls escaping and quoting conventions for the text
// formats. It is owned by the caller, passed by reference and never mutated
// by this package. Passing nil selects DefaultFormatSettings behavior.
type FormatSettings struct {
	CSV  CSVSettings
	JSON JSONSettings

	// NullRepresentation is the token written for NULL in escaped and
	// plain text. Empty means the default \N.
	NullRepresentation string
}

// CSVSettings controls the CSV format
type CSVSettings struct {
	// Delimiter separates fields; zero means comma
	Delimiter byte
	// AllowSingleQuotes accepts single-quoted fields on input
	AllowSingleQuotes bool
}

// JSONSettings controls the JSON format
type JSONSettings struct {
	// Quote64BitIntegers writes Int64 values as JSON strings so that
	// consumers without 64-bit integers do not lose precision
	Quote64BitIntegers bool
}

// DefaultFormatSettings returns the settings used when the caller passes nil
func DefaultFormatSettings() *FormatSettings {
	return &FormatSettings{
		CSV:  CSVSettings{Delimiter: ','},
		JSON: JSONSettings{Quote64BitIntegers: true},
	}
}

func (s *FormatSettings) csvDelimiter() byte {
	if s == nil || s.CSV.Delimiter == 0 {
		return ','
	}
	return s.CSV.Delimiter
}

func (s *FormatSettings) quote64BitIntegers() bool {
	if s == nil {
		return true
	}
	return s.JSON.Quote64BitIntegers
}
