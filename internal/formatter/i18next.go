package formatter

import (
	"path/filepath"

	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
)

// I18Next writes plain JSON like Default, but i18next has no native notion
// of a default language, so the invariant culture's output goes under the
// configured fallback culture's directory instead of the root.
type I18Next struct {
	Default
}

func (I18Next) Name() string {
	return string(config.FormatI18Next)
}

func (f I18Next) OutputDirectory(baseDir string, c culture.Culture, opts *config.Options) string {
	if c.IsInvariant() {
		return filepath.Join(baseDir, opts.FallbackCulture)
	}
	return f.Default.OutputDirectory(baseDir, c, opts)
}
