// Package jsondoc provides an insertion-ordered JSON object. encoding/json
// sorts plain map keys alphabetically, which would scramble the discovery
// order of resource keys in the generated files, so the converter builds its
// output through Document instead of map[string]any.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Document is an ordered mapping from field name to value. Values are
// strings, bools, or nested *Document nodes; nothing else appears in the
// converter's output.
type Document struct {
	keys   []string
	values map[string]any
}

// New creates an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Set stores value under key. Setting an existing key replaces the value in
// place, keeping the key's original position.
func (d *Document) Set(key string, value any) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of fields.
func (d *Document) Len() int {
	return len(d.keys)
}

// MarshalJSON implements json.Marshaler, emitting fields in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", k, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Indent renders the document as indented JSON text.
func Indent(d *Document, indent string) (string, error) {
	raw, err := json.MarshalIndent(d, "", indent)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// IndentASCII renders the document as indented JSON text with every
// non-ASCII rune escaped as \uXXXX (surrogate pairs above the BMP). Used by
// outputs that must stay 7-bit clean regardless of file encoding handling
// downstream.
func IndentASCII(d *Document, indent string) (string, error) {
	text, err := Indent(d, indent)
	if err != nil {
		return "", err
	}
	return escapeNonASCII(text), nil
}

func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}
