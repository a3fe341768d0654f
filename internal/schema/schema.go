package schema

import "regexp"

// Layouts of the date and timestamp fields as they appear in exchange files
// and on the command line. Timestamps are naive: no zone designator.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)

var decimalRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
