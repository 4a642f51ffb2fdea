package culture

import (
	"fmt"

	"golang.org/x/text/language"
)

// Culture identifies the language/region variant of a resource table. The
// zero value is the invariant culture: the base language a bundle falls back
// to when no regional table matches. Cultures are comparable and safe to use
// as map keys; equality is by canonical BCP-47 tag.
type Culture struct {
	tag string
}

// Invariant is the distinguished base/default culture.
var Invariant = Culture{}

// Parse normalizes a locale tag ("en-US", "fr", "pt-BR") into a Culture.
// An empty string yields the invariant culture.
func Parse(tag string) (Culture, error) {
	if tag == "" {
		return Invariant, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return Invariant, fmt.Errorf("invalid culture tag %q: %w", tag, err)
	}
	return Culture{tag: t.String()}, nil
}

// MustParse is like Parse but panics on an invalid tag. Intended for tests
// and package-level declarations.
func MustParse(tag string) Culture {
	c, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return c
}

// IsInvariant reports whether c is the invariant culture.
func (c Culture) IsInvariant() bool {
	return c.tag == ""
}

// Name returns the canonical tag, or the empty string for the invariant
// culture.
func (c Culture) Name() string {
	return c.tag
}

func (c Culture) String() string {
	if c.tag == "" {
		return "invariant"
	}
	return c.tag
}
