package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/resx2json/internal/culture"
)

func TestBundle_GetValues_AbsentCulture(t *testing.T) {
	b := New("messages")
	b.Set(culture.Invariant, "hello", "Hello")

	values := b.GetValues(culture.MustParse("de"))
	require.NotNil(t, values)
	assert.Empty(t, values, "absent culture yields an empty map, not a failure")
}

func TestBundle_GetValues_ReturnsCopy(t *testing.T) {
	b := New("messages")
	b.Set(culture.Invariant, "hello", "Hello")

	values := b.GetValues(culture.Invariant)
	values["hello"] = "mutated"

	again := b.GetValues(culture.Invariant)
	assert.Equal(t, "Hello", again["hello"], "callers must not be able to mutate bundle state")
}

func TestBundle_Set_OverwriteKeepsOrder(t *testing.T) {
	b := New("messages")
	b.Set(culture.Invariant, "a", "1")
	b.Set(culture.Invariant, "b", "2")
	b.Set(culture.Invariant, "a", "3")

	assert.Equal(t, []string{"a", "b"}, b.Keys(culture.Invariant))
	v, ok := b.Lookup(culture.Invariant, "a")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestBundle_Cultures_InsertionOrder(t *testing.T) {
	b := New("messages")
	fr := culture.MustParse("fr")
	de := culture.MustParse("de")
	b.Set(culture.Invariant, "k", "v")
	b.Set(fr, "k", "v")
	b.Set(de, "k", "v")

	assert.Equal(t, []culture.Culture{culture.Invariant, fr, de}, b.Cultures())
	assert.True(t, b.HasCulture(fr))
	assert.False(t, b.HasCulture(culture.MustParse("es")))
}

func TestBundle_MergeWith(t *testing.T) {
	fr := culture.MustParse("fr")

	a := New("messages")
	a.Set(culture.Invariant, "hello", "Hello")
	a.Set(culture.Invariant, "bye", "Bye")

	b := New("extra")
	b.Set(culture.Invariant, "hello", "Howdy")
	b.Set(fr, "hello", "Bonjour")

	a.MergeWith(b)

	assert.Equal(t, "messages", a.BaseName, "merging bundle's BaseName is preserved")

	v, _ := a.Lookup(culture.Invariant, "hello")
	assert.Equal(t, "Howdy", v, "other's value wins on collision")

	v, _ = a.Lookup(culture.Invariant, "bye")
	assert.Equal(t, "Bye", v)

	require.True(t, a.HasCulture(fr), "new cultures from other are added")
	v, _ = a.Lookup(fr, "hello")
	assert.Equal(t, "Bonjour", v)
}

func TestBundle_MergeWith_NotCommutative(t *testing.T) {
	a1 := New("a")
	a1.Set(culture.Invariant, "k", "from-a")
	b1 := New("b")
	b1.Set(culture.Invariant, "k", "from-b")

	a2 := New("a")
	a2.Set(culture.Invariant, "k", "from-a")
	b2 := New("b")
	b2.Set(culture.Invariant, "k", "from-b")

	a1.MergeWith(b1)
	b2.MergeWith(a2)

	v1, _ := a1.Lookup(culture.Invariant, "k")
	v2, _ := b2.Lookup(culture.Invariant, "k")
	assert.Equal(t, "from-b", v1)
	assert.Equal(t, "from-a", v2)
}

func TestBundle_MergeWith_NoAliasing(t *testing.T) {
	a := New("a")
	b := New("b")
	b.Set(culture.Invariant, "k", "v")

	a.MergeWith(b)
	a.Set(culture.Invariant, "k", "changed")

	v, _ := b.Lookup(culture.Invariant, "k")
	assert.Equal(t, "v", v, "merge must not alias tables between bundles")
}
