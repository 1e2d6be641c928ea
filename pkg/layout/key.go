package layout

import "strings"

// keySeparator joins the data source id and table name. The unit
// separator is not a legal character in either part, so keys never
// collide across contexts.
const keySeparator = "\x1f"

// Key identifies one (data source, table) context. Keys are value-equal
// and opaque: they are built once and used for lookup, never parsed back
// into their parts.
type Key string

// NewKey builds the context key for a data source and table pair.
func NewKey(sourceID, table string) Key {
	return Key(sourceID + keySeparator + table)
}

func (k Key) String() string {
	return strings.ReplaceAll(string(k), keySeparator, "/")
}

// Zero reports whether the key is the empty key.
func (k Key) Zero() bool {
	return k == ""
}
