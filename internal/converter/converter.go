// Package converter ties bundle discovery, merging, fallback injection,
// formatter shaping and file writing into one pipeline.
package converter

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/errors"
	"github.com/mcncl/resx2json/internal/formatter"
	"github.com/mcncl/resx2json/internal/fsutil"
	"github.com/mcncl/resx2json/internal/jsondoc"
	"github.com/mcncl/resx2json/internal/logging"
	"github.com/mcncl/resx2json/internal/resx"
)

// Convert runs the whole pipeline: select the formatter, discover bundles,
// merge when a single output file was requested, generate one JSON document
// per culture per bundle, and write the files.
//
// The returned Log is the operation's result record; modeled failures
// (configuration errors, empty discovery, skipped read-only targets) appear
// there. The error return is reserved for unrecoverable infrastructure
// failures such as unreadable inputs or a failed write; those abort the run
// where they occur, leaving already-written files in place.
func Convert(opts *config.Options, sink logging.Sink) (*logging.Log, error) {
	log := logging.New(sink)

	f, err := formatter.For(opts.Format)
	if err != nil {
		log.Errorf("%v", err)
		return log, nil
	}
	if err := opts.Validate(); err != nil {
		log.Errorf("invalid options: %v", err)
		return log, nil
	}
	if err := f.CheckOptions(opts); err != nil {
		log.Errorf("%v", err)
		return log, nil
	}
	if err := opts.Resolve(); err != nil {
		return log, errors.NewConfigError("failed to resolve options", err)
	}

	bundles, err := discover(opts, log)
	if err != nil {
		return log, err
	}
	if len(bundles) == 0 {
		log.Warningf("no resource bundles found in the given inputs")
		return log, nil
	}

	if len(bundles) > 1 && opts.OutputFile != "" {
		bundles = mergeAll(bundles, opts.OutputFile)
		log.Infof("merged input bundles into %q", bundles[0].BaseName)
	}

	log.Infof("converting %d bundle(s) using the %s format", len(bundles), f.Name())

	for _, b := range bundles {
		if err := convertBundle(f, b, opts, log); err != nil {
			return log, err
		}
	}
	return log, nil
}

// discover loads bundles from the input files and folders. When both yield a
// bundle with the same base name, the folder-discovered bundle replaces the
// file-discovered one wholesale; this is deliberately coarser than
// Bundle.MergeWith.
func discover(opts *config.Options, log *logging.Log) ([]*bundle.Bundle, error) {
	byName, err := resx.LoadFiles(opts.Inputs)
	if err != nil {
		return nil, err
	}
	for _, dir := range opts.InputFolders {
		fromFolder, err := resx.LoadFolder(dir, opts.Recursive)
		if err != nil {
			return nil, err
		}
		for name, b := range fromFolder {
			byName[name] = b
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	bundles := make([]*bundle.Bundle, 0, len(names))
	for _, name := range names {
		b := byName[name]
		log.Tracef("discovered bundle %q with %d culture(s)", name, len(b.Cultures()))
		bundles = append(bundles, b)
	}
	return bundles, nil
}

// mergeAll collapses the discovered bundles into a single one named after
// the output file's extension-stripped base name.
func mergeAll(bundles []*bundle.Bundle, outputFile string) []*bundle.Bundle {
	name := filepath.Base(outputFile)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	merged := bundle.New(name)
	for _, b := range bundles {
		merged.MergeWith(b)
	}
	return []*bundle.Bundle{merged}
}

func convertBundle(f formatter.Formatter, b *bundle.Bundle, opts *config.Options, log *logging.Log) error {
	var baseDir, baseFileName string
	if opts.OutputFile != "" {
		baseDir = filepath.Dir(opts.OutputFile)
		baseFileName = filepath.Base(opts.OutputFile)
	} else {
		baseDir = opts.OutputFolder
		baseFileName = b.BaseName + f.FileExtension()
	}

	baseDoc := buildDocument(b, culture.Invariant, opts)
	if err := writeCulture(f, b, baseDoc, culture.Invariant, baseDir, baseFileName, opts, log); err != nil {
		return err
	}

	for _, c := range b.Cultures() {
		if c.IsInvariant() {
			continue
		}
		doc := buildDocument(b, c, opts)
		if err := writeCulture(f, b, doc, c, baseDir, baseFileName, opts, log); err != nil {
			return err
		}
	}
	return nil
}

// buildDocument produces the JSON payload for one culture: keys follow the
// invariant table's order first (with fallback injection when enabled), then
// any culture-only keys in their own order. The casing policy is applied
// exactly once per key, before formatter shaping.
func buildDocument(b *bundle.Bundle, c culture.Culture, opts *config.Options) *jsondoc.Document {
	doc := jsondoc.New()

	if c.IsInvariant() {
		for _, k := range b.Keys(culture.Invariant) {
			v, _ := b.Lookup(culture.Invariant, k)
			doc.Set(applyCase(k, opts.Case), v)
		}
		return doc
	}

	for _, k := range b.Keys(culture.Invariant) {
		if v, ok := b.Lookup(c, k); ok {
			doc.Set(applyCase(k, opts.Case), v)
			continue
		}
		if opts.UseFallbackForMissingTranslation {
			v, _ := b.Lookup(culture.Invariant, k)
			doc.Set(applyCase(k, opts.Case), v)
		}
	}
	for _, k := range b.Keys(c) {
		if _, inBase := b.Lookup(culture.Invariant, k); !inBase {
			v, _ := b.Lookup(c, k)
			doc.Set(applyCase(k, opts.Case), v)
		}
	}
	return doc
}

func writeCulture(f formatter.Formatter, b *bundle.Bundle, doc *jsondoc.Document, c culture.Culture, baseDir, baseFileName string, opts *config.Options, log *logging.Log) error {
	shaped := f.Resource(doc, c, b, opts)

	content, err := f.FileContent(shaped, opts)
	if err != nil {
		return errors.NewConversionError(
			"failed to serialize output for bundle \""+b.BaseName+"\"",
			err,
		)
	}

	dir := f.OutputDirectory(baseDir, c, opts)
	name := f.FileName(baseFileName, c, opts)
	path := filepath.Join(dir, name)

	readOnly, err := fsutil.IsReadOnly(path)
	if err != nil {
		return errors.NewOutputError("failed to inspect \""+path+"\"", err)
	}
	if readOnly {
		if opts.Overwrite == config.OverwriteSkip {
			skipErr := errors.NewOutputError(
				"skipping \""+path+"\" (overwrite policy: skip)",
				errors.ErrReadOnlyTarget,
			)
			log.Errorf("%v", skipErr)
			return nil
		}
		if err := fsutil.ClearReadOnly(path); err != nil {
			return errors.NewOutputError("failed to clear read-only attribute on \""+path+"\"", err)
		}
	}

	if err := fsutil.WriteText(path, content); err != nil {
		return errors.NewOutputError("failed to write \""+path+"\"", err)
	}
	log.Tracef("wrote %s (%s)", path, c)
	return nil
}

// applyCase transforms a resource key per the configured casing policy.
// Camel lowers only the first rune; Lower lowers the whole key.
func applyCase(key string, casing config.Casing) string {
	switch casing {
	case config.CasingCamel:
		r := []rune(key)
		if len(r) > 0 {
			r[0] = unicode.ToLower(r[0])
		}
		return string(r)
	case config.CasingLower:
		return strings.ToLower(key)
	default:
		return key
	}
}
