package tabular

import (
	"encoding/json"
	"io"

	"github.com/tidwall/pretty"
	"github.com/toon-format/toon-go"

	"github.com/kjk/ldif2csv/ldif"
)

// asMaps converts records to one map per record, with cells merged
// the same way the delimited output merges them. JSON/TOON objects
// don't preserve key order so duplicate columns collapse here; the
// delimited writer is the format that honors duplicates.
func asMaps(records []*ldif.Record, cols []string, multiSep string) []map[string]string {
	res := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		m := make(map[string]string, len(cols))
		for _, name := range cols {
			m[name] = Cell(rec, name, multiSep)
		}
		res = append(res, m)
	}
	return res
}

// WriteJSON writes records as a pretty-printed JSON array of objects
func WriteJSON(w io.Writer, records []*ldif.Record, cols []string, multiSep string) error {
	d, err := json.Marshal(asMaps(records, cols, multiSep))
	if err != nil {
		return err
	}
	d = pretty.Pretty(d)
	_, err = w.Write(d)
	return err
}

// WriteTOON writes records in TOON format
func WriteTOON(w io.Writer, records []*ldif.Record, cols []string, multiSep string) error {
	d, err := toon.Marshal(asMaps(records, cols, multiSep))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}
