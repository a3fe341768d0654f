package csvio

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits the exchange format: comma-separated records with every field
// double-quoted and each record terminated by a single line feed.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one record. Interior double quotes are escaped by doubling.
func (w *Writer) Write(record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := w.w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := w.w.WriteByte('"'); err != nil {
			return err
		}
	}
	return w.w.WriteByte('\n')
}

// Flush writes buffered data to the underlying writer and reports any write
// error that occurred.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
