package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Format selects the target JS localization framework.
type Format string

const (
	FormatDefault    Format = "default"
	FormatRequireJS  Format = "requirejs"
	FormatI18Next    Format = "i18next"
	FormatDevExtreme Format = "devextreme"
)

// Casing is the key-name transformation applied during conversion.
type Casing string

const (
	CasingNone  Casing = "none"
	CasingCamel Casing = "camel"
	CasingLower Casing = "lower"
)

// OverwriteMode controls what happens when a target file already exists and
// is read-only.
type OverwriteMode string

const (
	OverwriteSkip  OverwriteMode = "skip"
	OverwriteForce OverwriteMode = "overwrite"
)

// Options is the complete configuration surface consumed by the converter.
// It is read-only from the converter's point of view.
type Options struct {
	Format       Format   `yaml:"format"`
	Inputs       []string `yaml:"inputs"`
	InputFolders []string `yaml:"input_folders"`
	Recursive    bool     `yaml:"recursive"`

	// OutputFile forces all bundles into a single output file; when set it
	// takes precedence over per-bundle naming under OutputFolder.
	OutputFile   string `yaml:"output_file"`
	OutputFolder string `yaml:"output_folder"`

	Overwrite       OverwriteMode `yaml:"overwrite"`
	Case            Casing        `yaml:"case"`
	FallbackCulture string        `yaml:"fallback_culture"`

	// UseFallbackForMissingTranslation injects the base-culture value for any
	// key a localized table is missing.
	UseFallbackForMissingTranslation bool `yaml:"use_fallback"`
}

// NewOptions creates Options with default values.
func NewOptions() *Options {
	return &Options{
		Format:    FormatDefault,
		Overwrite: OverwriteSkip,
		Case:      CasingNone,
	}
}

// Validate checks the structural validity of the options. Formatter-specific
// requirements (e.g. DevExtreme's fallback culture) are checked by the
// selected formatter, not here.
func (o *Options) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Format, validation.Required,
			validation.In(FormatDefault, FormatRequireJS, FormatI18Next, FormatDevExtreme)),
		validation.Field(&o.Case,
			validation.In(CasingNone, CasingCamel, CasingLower)),
		validation.Field(&o.Overwrite,
			validation.In(OverwriteSkip, OverwriteForce)),
	)
}

// Resolve fills in defaulted values that depend on the environment. The
// output folder falls back to the current working directory as an explicit
// rule rather than being resolved implicitly at write time.
func (o *Options) Resolve() error {
	if o.Format == "" {
		o.Format = FormatDefault
	}
	if o.Case == "" {
		o.Case = CasingNone
	}
	if o.Overwrite == "" {
		o.Overwrite = OverwriteSkip
	}
	if o.OutputFolder == "" && o.OutputFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve output folder: %w", err)
		}
		o.OutputFolder = cwd
	}
	return nil
}

// LoadFile loads options from a YAML file, applying them over defaults.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	opts := NewOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return opts, nil
}

// FindConfigFile searches for a config file in the current directory and its
// parents.
func FindConfigFile() string {
	configNames := []string{".resx2json.yml", ".resx2json.yaml", "resx2json.yml", "resx2json.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
