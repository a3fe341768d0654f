package csvio

import (
	"encoding/csv"
	"io"
)

// Reader decodes the exchange format. Parsing is strict: quotes must be
// balanced and every record must have the same field count as the first one.
type Reader struct {
	r *csv.Reader
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: csv.NewReader(r)}
}

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() ([]string, error) {
	return r.r.Read()
}
