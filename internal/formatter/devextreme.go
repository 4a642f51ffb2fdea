package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/errors"
	"github.com/mcncl/resx2json/internal/jsondoc"
)

// DevExtreme emits dictionary modules for the DevExtreme localization API.
// All files land in the output root with the culture encoded in the file
// name ("messages.en.js"); each payload is wrapped under its culture tag and
// serialized inside a UMD shim calling localization.loadMessages. The
// invariant culture has no tag of its own, which is why a fallback culture
// is mandatory for this format.
type DevExtreme struct {
	Default
}

// messageTemplate is a UMD loader shim: AMD, CommonJS-style, or the global
// DevExpress object.
const messageTemplate = `"use strict";

!function(factory) {
	if (typeof define === "function" && define.amd) {
		define(function(require, exports, module) {
			factory(require("devextreme/localization"));
		});
	} else if (typeof module === "object" && module.exports) {
		factory(require("devextreme/localization"));
	} else {
		factory(DevExpress.localization);
	}
}(function(localization) {
	localization.loadMessages(%s);
});
`

func (DevExtreme) Name() string {
	return string(config.FormatDevExtreme)
}

func (DevExtreme) FileExtension() string {
	return ".js"
}

func (DevExtreme) CheckOptions(opts *config.Options) error {
	if strings.TrimSpace(opts.FallbackCulture) == "" {
		return errors.NewConfigError(
			"the devextreme format requires a non-empty fallback culture (--fallback-culture)",
			nil,
		)
	}
	return nil
}

// OutputDirectory is always the base directory; the culture lives in the
// file name instead.
func (DevExtreme) OutputDirectory(baseDir string, c culture.Culture, opts *config.Options) string {
	return baseDir
}

func (f DevExtreme) FileName(baseFileName string, c culture.Culture, opts *config.Options) string {
	ext := filepath.Ext(baseFileName)
	stem := strings.TrimSuffix(baseFileName, ext)
	return stem + "." + f.cultureTag(c, opts) + ext
}

func (f DevExtreme) Resource(doc *jsondoc.Document, c culture.Culture, b *bundle.Bundle, opts *config.Options) *jsondoc.Document {
	out := jsondoc.New()
	out.Set(f.cultureTag(c, opts), doc)
	return out
}

func (DevExtreme) FileContent(doc *jsondoc.Document, opts *config.Options) (string, error) {
	body, err := jsondoc.IndentASCII(doc, "\t")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(messageTemplate, body), nil
}

func (DevExtreme) cultureTag(c culture.Culture, opts *config.Options) string {
	if c.IsInvariant() {
		return opts.FallbackCulture
	}
	return c.Name()
}
