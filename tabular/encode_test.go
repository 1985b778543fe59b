package tabular

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert"

	"github.com/kjk/ldif2csv/ldif"
)

func TestWriteJSON(t *testing.T) {
	records := []*ldif.Record{
		mkRecord("dn", "cn=a", "mail", "a@x"),
		mkRecord("dn", "cn=b"),
	}
	records[0].Add("mail", "b@x")

	var buf bytes.Buffer
	err := WriteJSON(&buf, records, []string{"dn", "mail"}, ",")
	assert.NoError(t, err)

	var got []map[string]string
	err = json.Unmarshal(buf.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "cn=a", got[0]["dn"])
	// multi-values are merged the same way as in delimited output
	assert.Equal(t, "a@x,b@x", got[0]["mail"])
	assert.Equal(t, "", got[1]["mail"])
}

func TestWriteTOON(t *testing.T) {
	records := []*ldif.Record{
		mkRecord("dn", "cn=a", "mail", "a@x"),
	}
	var buf bytes.Buffer
	err := WriteTOON(&buf, records, []string{"dn", "mail"}, ",")
	assert.NoError(t, err)
	s := buf.String()
	assert.True(t, strings.Contains(s, "cn=a"))
	assert.True(t, strings.Contains(s, "a@x"))
	assert.True(t, strings.HasSuffix(s, "\n"))
}
