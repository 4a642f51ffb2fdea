package resx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/resx2json/internal/culture"
)

const sampleResx = `<?xml version="1.0" encoding="utf-8"?>
<root>
  <resheader name="resmimetype">
    <value>text/microsoft-resx</value>
  </resheader>
  <resheader name="version">
    <value>2.0</value>
  </resheader>
  <data name="Greeting" xml:space="preserve">
    <value>Hello</value>
  </data>
  <data name="Farewell" xml:space="preserve">
    <value>Goodbye</value>
    <comment>shown on logout</comment>
  </data>
  <data name="Empty" xml:space="preserve">
    <value/>
  </data>
</root>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strings.resx", sampleResx)

	keys, values, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Greeting", "Farewell", "Empty"}, keys, "keys kept in document order")
	assert.Equal(t, "Hello", values["Greeting"])
	assert.Equal(t, "Goodbye", values["Farewell"])
	assert.Equal(t, "", values["Empty"])
}

func TestParseFile_DuplicateKeyLastWins(t *testing.T) {
	content := `<root>
  <data name="K"><value>first</value></data>
  <data name="K"><value>second</value></data>
</root>`
	path := writeFile(t, t.TempDir(), "dup.resx", content)

	keys, values, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"K"}, keys)
	assert.Equal(t, "second", values["K"])
}

func TestParseFile_NotFound(t *testing.T) {
	_, _, err := ParseFile("/no/such/file.resx")
	assert.Error(t, err)
}

func TestParseFile_InvalidXML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.resx", "<root><data name=")
	_, _, err := ParseFile(path)
	assert.Error(t, err)
}

func TestSplitBaseName(t *testing.T) {
	tests := []struct {
		path     string
		baseName string
		culture  culture.Culture
	}{
		{"strings.resx", "strings", culture.Invariant},
		{"strings.fr.resx", "strings", culture.MustParse("fr")},
		{"strings.fr-FR.resx", "strings", culture.MustParse("fr-FR")},
		{"/some/dir/messages.pt-BR.resx", "messages", culture.MustParse("pt-BR")},
		// A segment that is not a locale tag stays part of the base name.
		{"my.file.resx", "my.file", culture.Invariant},
	}

	for _, tt := range tests {
		base, c := SplitBaseName(tt.path)
		assert.Equal(t, tt.baseName, base, "path %q", tt.path)
		assert.Equal(t, tt.culture, c, "path %q", tt.path)
	}
}

func TestLoadFiles_GroupsByBaseName(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "strings.resx", `<root><data name="Hello"><value>Hello</value></data></root>`)
	fr := writeFile(t, dir, "strings.fr.resx", `<root><data name="Hello"><value>Bonjour</value></data></root>`)
	other := writeFile(t, dir, "labels.resx", `<root><data name="OK"><value>OK</value></data></root>`)

	bundles, err := LoadFiles([]string{base, fr, other})
	require.NoError(t, err)
	require.Len(t, bundles, 2)

	strings := bundles["strings"]
	require.NotNil(t, strings)
	assert.Equal(t, "strings", strings.BaseName)
	assert.True(t, strings.HasCulture(culture.Invariant))
	assert.True(t, strings.HasCulture(culture.MustParse("fr")))

	v, ok := strings.Lookup(culture.MustParse("fr"), "Hello")
	require.True(t, ok)
	assert.Equal(t, "Bonjour", v)

	labels := bundles["labels"]
	require.NotNil(t, labels)
	assert.Equal(t, map[string]string{"OK": "OK"}, labels.GetValues(culture.Invariant))
}

func TestLoadFiles_EmptyPath(t *testing.T) {
	_, err := LoadFiles([]string{"  "})
	assert.Error(t, err)
}

func TestLoadFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "strings.resx", `<root><data name="A"><value>a</value></data></root>`)
	writeFile(t, dir, "strings.de.resx", `<root><data name="A"><value>b</value></data></root>`)
	writeFile(t, dir, "notes.txt", "ignored")

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, sub, "deep.resx", `<root><data name="X"><value>x</value></data></root>`)

	// Non-recursive ignores the nested folder.
	bundles, err := LoadFolder(dir, false)
	require.NoError(t, err)
	assert.Len(t, bundles, 1)
	assert.Contains(t, bundles, "strings")

	// Recursive picks it up.
	bundles, err = LoadFolder(dir, true)
	require.NoError(t, err)
	assert.Len(t, bundles, 2)
	assert.Contains(t, bundles, "deep")
}

func TestLoadFolder_MissingDir(t *testing.T) {
	_, err := LoadFolder("/no/such/dir", false)
	assert.Error(t, err)
}

func TestLoadFolder_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "strings.RESX", `<root><data name="A"><value>a</value></data></root>`)

	bundles, err := LoadFolder(dir, false)
	require.NoError(t, err)
	assert.Len(t, bundles, 1)
}
