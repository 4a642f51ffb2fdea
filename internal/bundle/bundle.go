package bundle

import (
	"github.com/mcncl/resx2json/internal/culture"
)

// Bundle is the in-memory form of one logical resource group: the set of
// localized key/value tables sharing a base file name, one table per culture.
// Each Bundle owns its tables outright; merging never aliases maps between
// bundles.
type Bundle struct {
	// BaseName identifies the resource group. It is derived from the base
	// file name and drives output file naming. Case-sensitive.
	BaseName string

	tables map[culture.Culture]*table
	order  []culture.Culture
}

// table keeps the key/value pairs for one culture together with the order
// keys were first added, so output follows discovery order.
type table struct {
	values map[string]string
	keys   []string
}

// New creates an empty bundle with the given base name.
func New(baseName string) *Bundle {
	return &Bundle{
		BaseName: baseName,
		tables:   make(map[culture.Culture]*table),
	}
}

// Cultures returns the cultures present in the bundle, in the order they
// were first added.
func (b *Bundle) Cultures() []culture.Culture {
	out := make([]culture.Culture, len(b.order))
	copy(out, b.order)
	return out
}

// HasCulture reports whether the bundle carries a table for c.
func (b *Bundle) HasCulture(c culture.Culture) bool {
	_, ok := b.tables[c]
	return ok
}

// Set stores a value for key under the given culture, creating the culture's
// table if needed. An existing key is overwritten in place, keeping its
// original position.
func (b *Bundle) Set(c culture.Culture, key, value string) {
	t, ok := b.tables[c]
	if !ok {
		t = &table{values: make(map[string]string)}
		b.tables[c] = t
		b.order = append(b.order, c)
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// GetValues returns a copy of the key/value table for the given culture.
// A culture that is absent from the bundle yields an empty map, never an
// error.
func (b *Bundle) GetValues(c culture.Culture) map[string]string {
	t, ok := b.tables[c]
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Keys returns the keys of the given culture's table in insertion order.
func (b *Bundle) Keys(c culture.Culture) []string {
	t, ok := b.tables[c]
	if !ok {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Lookup returns the value for key under culture c.
func (b *Bundle) Lookup(c culture.Culture, key string) (string, bool) {
	t, ok := b.tables[c]
	if !ok {
		return "", false
	}
	v, ok := t.values[key]
	return v, ok
}

// MergeWith unions every culture table from other into b. On key collision
// within the same culture, other's value wins. Cultures only present in
// other are added. The receiver's BaseName is preserved. Merge is not
// commutative when keys collide.
func (b *Bundle) MergeWith(other *Bundle) {
	for _, c := range other.order {
		t := other.tables[c]
		for _, k := range t.keys {
			b.Set(c, k, t.values[k])
		}
	}
}
