// Package formatter holds the per-framework output strategies. A Formatter
// decides the output file extension, how the per-culture directory and file
// name are derived, how each culture's JSON payload is shaped, and how the
// final file text is serialized. The variant set is closed: default,
// RequireJS, i18next, DevExtreme.
package formatter

import (
	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/errors"
	"github.com/mcncl/resx2json/internal/jsondoc"
)

// Formatter shapes the converter's output for one target JS framework. All
// methods are pure functions of their inputs.
type Formatter interface {
	// Name returns the format selector value this strategy serves.
	Name() string

	// FileExtension returns the output file extension, including the dot.
	FileExtension() string

	// CheckOptions validates formatter-specific configuration before any
	// processing begins. A non-nil error aborts the whole run.
	CheckOptions(opts *config.Options) error

	// OutputDirectory computes the per-culture output subdirectory.
	OutputDirectory(baseDir string, c culture.Culture, opts *config.Options) string

	// FileName computes the per-culture output file name from the bundle's
	// base file name (extension included).
	FileName(baseFileName string, c culture.Culture, opts *config.Options) string

	// Resource shapes one culture's JSON payload. b is the whole bundle, for
	// strategies that need to enumerate the available cultures.
	Resource(doc *jsondoc.Document, c culture.Culture, b *bundle.Bundle, opts *config.Options) *jsondoc.Document

	// FileContent serializes the shaped document into the final file text.
	FileContent(doc *jsondoc.Document, opts *config.Options) (string, error)
}

var registry = map[config.Format]Formatter{
	config.FormatDefault:    Default{},
	config.FormatRequireJS:  RequireJS{},
	config.FormatI18Next:    I18Next{},
	config.FormatDevExtreme: DevExtreme{},
}

// For returns the strategy registered for the given format selector.
func For(format config.Format) (Formatter, error) {
	f, ok := registry[format]
	if !ok {
		return nil, errors.NewConfigError(
			"unknown output format \""+string(format)+"\"",
			errors.ErrUnknownFormat,
		)
	}
	return f, nil
}
