package formatter

import (
	"path/filepath"

	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/jsondoc"
)

// Default writes plain indented JSON: the invariant culture at the output
// root, every other culture under a subdirectory named after its tag. The
// other strategies embed Default and override what differs.
type Default struct{}

func (Default) Name() string {
	return string(config.FormatDefault)
}

func (Default) FileExtension() string {
	return ".json"
}

// CheckOptions accepts any options.
func (Default) CheckOptions(opts *config.Options) error {
	return nil
}

func (Default) OutputDirectory(baseDir string, c culture.Culture, opts *config.Options) string {
	if c.IsInvariant() {
		return baseDir
	}
	return filepath.Join(baseDir, c.Name())
}

// FileName returns baseFileName unchanged; culture differentiation happens
// via the directory.
func (Default) FileName(baseFileName string, c culture.Culture, opts *config.Options) string {
	return baseFileName
}

// Resource is the identity: the payload is the culture's values as-is.
func (Default) Resource(doc *jsondoc.Document, c culture.Culture, b *bundle.Bundle, opts *config.Options) *jsondoc.Document {
	return doc
}

func (Default) FileContent(doc *jsondoc.Document, opts *config.Options) (string, error) {
	return jsondoc.Indent(doc, "  ")
}
