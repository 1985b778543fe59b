package ldif

/*
An LDIF entry is a group of "name: value" lines terminated by a blank
line. The same attribute can appear multiple times and each occurrence
adds one value. We keep attributes in the order they first appear
because column auto-discovery depends on it.
*/

// Attr is one attribute of a record with all its values, in the
// order they appeared in the source.
type Attr struct {
	Name   string
	Values []string
}

// Record is a single LDIF entry: an ordered list of attributes.
// "dn" is not special, it's an attribute like any other.
type Record struct {
	Attrs []Attr
}

// Add appends value to attribute name, creating the attribute
// if this is its first occurrence.
func (r *Record) Add(name, value string) {
	for i := range r.Attrs {
		if r.Attrs[i].Name == name {
			r.Attrs[i].Values = append(r.Attrs[i].Values, value)
			return
		}
	}
	r.Attrs = append(r.Attrs, Attr{
		Name:   name,
		Values: []string{value},
	})
}

// Get returns all values of attribute name, nil if the record
// doesn't have it.
func (r *Record) Get(name string) []string {
	for i := range r.Attrs {
		if r.Attrs[i].Name == name {
			return r.Attrs[i].Values
		}
	}
	return nil
}

// Names returns attribute names in first-seen order.
func (r *Record) Names() []string {
	names := make([]string, len(r.Attrs))
	for i := range r.Attrs {
		names[i] = r.Attrs[i].Name
	}
	return names
}

// Empty returns true if the record has no attributes.
func (r *Record) Empty() bool {
	return len(r.Attrs) == 0
}
