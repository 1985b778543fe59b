package tabular

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/kjk/ldif2csv/ldif"
)

/*
Projects parsed LDIF records onto flat delimited rows.

Every cell is wrapped in the quote character unconditionally. A quote
character inside a value is NOT escaped. That matches the historical
output format of this tool; consumers that need embedded quotes must
pick a quote character that doesn't occur in the data.
*/

// Format describes the output: field separator between cells,
// separator joining multiple values of one attribute, and the
// quote wrapped around every cell. Immutable after creation.
type Format struct {
	FieldSep string
	MultiSep string
	Quote    string
}

// DefaultFormat is ";" separated cells, "," separated multi-values,
// cells quoted with '"'
var DefaultFormat = Format{
	FieldSep: ";",
	MultiSep: ",",
	Quote:    `"`,
}

// NewFormat validates separators. Each must be exactly one character.
func NewFormat(fieldSep, multiSep, quote string) (Format, error) {
	for _, v := range []struct {
		what string
		s    string
	}{
		{"field separator", fieldSep},
		{"multi-value separator", multiSep},
		{"quote character", quote},
	} {
		if len(v.s) != 1 {
			return Format{}, fmt.Errorf("%s must be a single character, got '%s'", v.what, v.s)
		}
	}
	return Format{
		FieldSep: fieldSep,
		MultiSep: multiSep,
		Quote:    quote,
	}, nil
}

// Columns returns the output columns. If explicit is non-empty it's used
// verbatim: unknown names are legal (they render as empty cells) and
// duplicates are preserved. Otherwise it's the union of attribute
// names over all records, deduplicated, in first-seen order.
func Columns(records []*ldif.Record, explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	var cols []string
	seen := map[string]bool{}
	for _, rec := range records {
		for _, a := range rec.Attrs {
			if !seen[a.Name] {
				seen[a.Name] = true
				cols = append(cols, a.Name)
			}
		}
	}
	return cols
}

// Cell merges all values of attribute name into one cell string.
// No values => empty string, multiple values joined by multiSep
// in source order.
func Cell(rec *ldif.Record, name string, multiSep string) string {
	return strings.Join(rec.Get(name), multiSep)
}

// Writer emits one delimited line per record
type Writer struct {
	w      io.Writer
	format Format

	// re-used between writes
	buf bytes.Buffer
}

// NewWriter creates a writer
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{
		w:      w,
		format: format,
	}
}

func (w *Writer) writeRow(cells []string) error {
	w.buf.Reset()
	for i, cell := range cells {
		if i > 0 {
			w.buf.WriteString(w.format.FieldSep)
		}
		w.buf.WriteString(w.format.Quote)
		w.buf.WriteString(cell)
		w.buf.WriteString(w.format.Quote)
	}
	w.buf.WriteByte('\n')
	_, err := w.w.Write(w.buf.Bytes())
	return err
}

// WriteHeader writes the header line: the column names themselves,
// quoted and separated like any data row
func (w *Writer) WriteHeader(cols []string) error {
	return w.writeRow(cols)
}

// WriteRecord writes one record as one line, one cell per column,
// in column order. Attributes the record doesn't have render as
// empty quoted cells.
func (w *Writer) WriteRecord(rec *ldif.Record, cols []string) error {
	cells := make([]string, len(cols))
	for i, name := range cols {
		cells[i] = Cell(rec, name, w.format.MultiSep)
	}
	return w.writeRow(cells)
}
