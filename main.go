package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/mcncl/resx2json/internal/config"
	"github.com/mcncl/resx2json/internal/converter"
	"github.com/mcncl/resx2json/internal/errors"
	"github.com/mcncl/resx2json/internal/logging"
)

// CLI defines the command-line interface
var CLI struct {
	Format          string   `help:"Output format: default, requirejs, i18next or devextreme." short:"f" default:"default"`
	Input           []string `name:"input" help:"Path to an input .resx file. May be repeated." short:"i" type:"path"`
	InputFolder     []string `name:"input-folder" help:"Folder to scan for .resx files. May be repeated." short:"d" type:"path"`
	Recursive       bool     `help:"Scan input folders recursively." short:"r"`
	OutputFile      string   `help:"Write all bundles into this single output file." short:"o" type:"path"`
	OutputFolder    string   `help:"Folder for the generated files. Defaults to the current directory." short:"O" type:"path"`
	Overwrite       string   `help:"Policy for existing read-only files: skip or overwrite." default:"skip"`
	Case            string   `help:"Key casing: none, camel or lower." short:"c" default:"none"`
	FallbackCulture string   `help:"Culture tag standing in for the invariant culture (required for devextreme)."`
	UseFallback     bool     `help:"Fill missing translations with the base-culture value."`
	Config          string   `help:"Path to a YAML config file. Auto-discovered when omitted." type:"path"`
	Verbose         bool     `help:"Enable trace logging." short:"v"`
	Version         bool     `help:"Show version information."`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("resx2json"),
		kong.Description("A tool to convert .resx resource bundles into JSON files for JS localization frameworks"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("resx2json version %s\n", Version)
		return
	}

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: resx2json --help\n")
		os.Exit(1)
	}

	log, err := converter.Convert(opts, newSink(CLI.Verbose))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
	if log.HasErrors() {
		os.Exit(1)
	}
}

// buildOptions resolves the config file (if any) and layers the CLI flags on
// top of it.
func buildOptions() (*config.Options, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	opts := config.NewOptions()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config file '%s'", configPath), err)
		}
		opts = loaded
	}

	applyFlags(opts)
	return opts, nil
}

// applyFlags overrides file-loaded options with CLI values. Flags left at
// their zero/default value keep whatever the config file said, mirroring the
// file-then-flags precedence of the config loading.
func applyFlags(opts *config.Options) {
	if CLI.Format != "" && CLI.Format != string(config.FormatDefault) {
		opts.Format = config.Format(CLI.Format)
	} else if opts.Format == "" {
		opts.Format = config.FormatDefault
	}
	if len(CLI.Input) > 0 {
		opts.Inputs = CLI.Input
	}
	if len(CLI.InputFolder) > 0 {
		opts.InputFolders = CLI.InputFolder
	}
	if CLI.Recursive {
		opts.Recursive = true
	}
	if CLI.OutputFile != "" {
		opts.OutputFile = CLI.OutputFile
	}
	if CLI.OutputFolder != "" {
		opts.OutputFolder = CLI.OutputFolder
	}
	if CLI.Overwrite != "" && CLI.Overwrite != string(config.OverwriteSkip) {
		opts.Overwrite = config.OverwriteMode(CLI.Overwrite)
	}
	if CLI.Case != "" && CLI.Case != string(config.CasingNone) {
		opts.Case = config.Casing(CLI.Case)
	}
	if CLI.FallbackCulture != "" {
		opts.FallbackCulture = CLI.FallbackCulture
	}
	if CLI.UseFallback {
		opts.UseFallbackForMissingTranslation = true
	}
}

// newSink builds the live console logger the run record tees into.
func newSink(verbose bool) logging.Sink {
	level := glog.Info
	if verbose {
		level = glog.Trace
	}
	return glog.NewLogger(
		glog.WithLevel(level),
		glog.WithLoggerTypeConsole(),
	)
}
