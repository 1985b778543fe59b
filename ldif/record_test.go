package ldif

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestRecord(t *testing.T) {
	r := &Record{}
	assert.True(t, r.Empty())
	assert.Nil(t, r.Get("cn"))

	r.Add("cn", "a")
	r.Add("mail", "m1")
	r.Add("cn", "b")
	assert.False(t, r.Empty())
	// first-seen attribute order, values in order of appearance
	assert.Equal(t, []string{"cn", "mail"}, r.Names())
	assert.Equal(t, []string{"a", "b"}, r.Get("cn"))
	assert.Equal(t, []string{"m1"}, r.Get("mail"))

	// attribute names are case-sensitive
	r.Add("CN", "c")
	assert.Equal(t, []string{"cn", "mail", "CN"}, r.Names())
	assert.Equal(t, []string{"c"}, r.Get("CN"))
}
