package formatter

import (
	"fmt"

	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/jsondoc"
)

// RequireJS emits AMD i18n resource modules. The invariant-culture document
// is wrapped as {"root": values, "<tag>": true, ...} so the AMD loader knows
// which locales exist; localized documents pass through unchanged and land
// in per-culture subdirectories like the default layout.
type RequireJS struct {
	Default
}

func (RequireJS) Name() string {
	return string(config.FormatRequireJS)
}

func (RequireJS) FileExtension() string {
	return ".js"
}

func (RequireJS) Resource(doc *jsondoc.Document, c culture.Culture, b *bundle.Bundle, opts *config.Options) *jsondoc.Document {
	if !c.IsInvariant() {
		return doc
	}

	out := jsondoc.New()
	out.Set("root", doc)
	// Availability flags are keyed by each localized culture present in the
	// bundle, in bundle order.
	for _, bc := range b.Cultures() {
		if bc.IsInvariant() {
			continue
		}
		out.Set(bc.Name(), true)
	}
	return out
}

func (f RequireJS) FileContent(doc *jsondoc.Document, opts *config.Options) (string, error) {
	body, err := f.Default.FileContent(doc, opts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("define(%s);", body), nil
}
