package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidTags(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"en-US", "en-US"},
		{"fr-FR", "fr-FR"},
		{"pt-br", "pt-BR"}, // canonicalized casing
		{"ru", "ru"},
	}

	for _, tt := range tests {
		c, err := Parse(tt.input)
		require.NoError(t, err, "tag %q", tt.input)
		assert.Equal(t, tt.expected, c.Name())
		assert.False(t, c.IsInvariant())
	}
}

func TestParse_EmptyIsInvariant(t *testing.T) {
	c, err := Parse("")
	require.NoError(t, err)
	assert.True(t, c.IsInvariant())
	assert.Equal(t, Invariant, c)
	assert.Equal(t, "", c.Name())
	assert.Equal(t, "invariant", c.String())
}

func TestParse_InvalidTag(t *testing.T) {
	_, err := Parse("not a culture")
	assert.Error(t, err)
}

func TestCulture_Equality(t *testing.T) {
	a := MustParse("en-US")
	b := MustParse("en-us")
	assert.Equal(t, a, b, "equality is by normalized tag")
	assert.NotEqual(t, a, Invariant)
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("!!") })
}
