// Package resx discovers and parses .NET resource (.resx) files into
// bundles. Files sharing a base name form one bundle; the culture of each
// file comes from its pre-extension name segment ("strings.fr-FR.resx"),
// with no segment meaning the invariant culture ("strings.resx").
package resx

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcncl/resx2json/internal/bundle"
	"github.com/mcncl/resx2json/internal/culture"
	"github.com/mcncl/resx2json/internal/errors"
)

// Extension is the resource file extension, matched case-insensitively
// during folder discovery.
const Extension = ".resx"

// resx data entries live under the document root:
//
//	<root>
//	  <data name="Greeting" xml:space="preserve">
//	    <value>Hello</value>
//	  </data>
//	</root>
//
// resheader, metadata and the inline schema are ignored.
type document struct {
	Data []entry `xml:"data"`
}

type entry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// ParseFile parses a single resx file into its key/value pairs, returned in
// document order. Duplicate keys keep the last value, matching the tolerance
// of the .NET resource reader.
func ParseFile(path string) ([]string, map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NewParsingError(
				fmt.Sprintf("file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, nil, errors.NewParsingError(
			fmt.Sprintf("failed to read file '%s'", path),
			err,
		)
	}

	var doc document
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, errors.NewParsingError(
			fmt.Sprintf("failed to parse resx file '%s'", path),
			errors.ErrInvalidResx,
		)
	}

	keys := make([]string, 0, len(doc.Data))
	values := make(map[string]string, len(doc.Data))
	for _, e := range doc.Data {
		if e.Name == "" {
			continue
		}
		if _, seen := values[e.Name]; !seen {
			keys = append(keys, e.Name)
		}
		values[e.Name] = e.Value
	}
	return keys, values, nil
}

// SplitBaseName splits a resx file path into the bundle base name and the
// culture encoded in the file name. A pre-extension segment that does not
// parse as a locale tag is treated as part of the base name, so
// "my.file.resx" is base "my.file" under the invariant culture.
func SplitBaseName(path string) (string, culture.Culture) {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	idx := strings.LastIndex(stem, ".")
	if idx < 0 {
		return stem, culture.Invariant
	}

	c, err := culture.Parse(stem[idx+1:])
	if err != nil {
		return stem, culture.Invariant
	}
	return stem[:idx], c
}

// LoadFiles parses the given resx files and groups them into bundles by base
// name. Base names are case-sensitive.
func LoadFiles(paths []string) (map[string]*bundle.Bundle, error) {
	bundles := make(map[string]*bundle.Bundle)
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			return nil, errors.NewParsingError("input file path is empty", errors.ErrInvalidFilePath)
		}

		keys, values, err := ParseFile(path)
		if err != nil {
			return nil, err
		}

		baseName, c := SplitBaseName(path)
		b, ok := bundles[baseName]
		if !ok {
			b = bundle.New(baseName)
			bundles[baseName] = b
		}
		for _, k := range keys {
			b.Set(c, k, values[k])
		}
	}
	return bundles, nil
}

// LoadFolder discovers resx files under dir, optionally recursing into
// subdirectories, and groups them into bundles.
func LoadFolder(dir string, recursive bool) (map[string]*bundle.Bundle, error) {
	paths, err := discover(dir, recursive)
	if err != nil {
		return nil, err
	}
	return LoadFiles(paths)
}

func discover(dir string, recursive bool) ([]string, error) {
	var paths []string

	if !recursive {
		items, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.NewDiscoveryError(
				fmt.Sprintf("failed to read folder '%s'", dir),
				err,
			)
		}
		for _, item := range items {
			if !item.IsDir() && isResx(item.Name()) {
				paths = append(paths, filepath.Join(dir, item.Name()))
			}
		}
		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isResx(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.NewDiscoveryError(
			fmt.Sprintf("failed to walk folder '%s'", dir),
			err,
		)
	}
	return paths, nil
}

func isResx(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}
