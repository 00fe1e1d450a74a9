// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

// helixdoc generates Lua annotations, a selene manifest and a markdown
// reference from a helix scripting API schema directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/woozymasta/helixdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/helixdoc"
	_buildTime string
)

// cliOptions describes helixdoc CLI flags and subcommands.
type cliOptions struct {
	Config  string `short:"c" long:"config" description:"INI file with option defaults; command line flags take precedence"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
	JSONLog bool   `long:"json-log" description:"Write logs as JSON"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Formats  formatsCommand  `command:"formats" description:"List output formats"`
	Generate generateCommand `command:"generate" description:"Generate artifacts from a schema directory"`
}

// markdownFlags groups markdown reference rendering flags.
type markdownFlags struct {
	TemplatePath string `long:"md-template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `long:"md-title" description:"Markdown document title" default:"Helix scripting reference"`
	ListMarker   string `long:"md-list-marker" description:"Unordered list marker" choice:"-" choice:"*" default:"*"`
	ExampleMode  string `long:"md-example" description:"Parameters passed in usage examples" choice:"required" choice:"all" default:"required"`
	WrapWidth    int    `long:"md-wrap" description:"Wrap width for description paragraphs" default:"80"`
}

// seleneFlags groups selene manifest flags.
type seleneFlags struct {
	Base string `long:"selene-base" description:"Selene standard library to extend" default:"lua52"`
	Name string `long:"selene-name" description:"Manifest name and output file stem" default:"helix"`
}

// generateCommand renders artifacts for the selected formats.
type generateCommand struct {
	runner *cliRunner

	Formats   []string `short:"f" long:"format" description:"Output format (repeatable; every format when omitted)" choice:"lua" choice:"md" choice:"yml"`
	OutputDir string   `short:"o" long:"out" description:"Output directory" default:"docs"`
	Stdout    bool     `long:"stdout" description:"Write artifacts to stdout instead of files"`

	Markdown markdownFlags `group:"Markdown Reference"`
	Selene   seleneFlags   `group:"Selene Manifest"`

	Args struct {
		Source string `positional-arg-name:"source" description:"Schema directory (Classes, Structs, StaticClasses, UtilityClasses, Enums.json)" required:"yes"`
	} `positional-args:"yes"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// formatsCommand lists registered backends.
type formatsCommand struct {
	runner *cliRunner
}

// Execute runs formats subcommand.
func (command *formatsCommand) Execute(_ []string) error {
	return command.runner.runFormats()
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	options     *cliOptions
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "helixdoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runGenerate loads the schema directory and writes every requested artifact.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	logger := runner.logger()
	defer func() { _ = logger.Sync() }()

	docs, err := helixdoc.LoadDir(command.Args.Source, helixdoc.LoadOptions{Logger: logger})
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	opt := helixdoc.BackendOptions{
		Markdown: helixdoc.MarkdownOptions{
			Title:       command.Markdown.Title,
			ListMarker:  command.Markdown.ListMarker,
			ExampleMode: helixdoc.ExampleMode(command.Markdown.ExampleMode),
			WrapWidth:   command.Markdown.WrapWidth,
		},
		Selene: helixdoc.SeleneOptions{
			Base: command.Selene.Base,
			Name: command.Selene.Name,
		},
	}

	if command.Markdown.TemplatePath != "" {
		customTemplate, err := os.ReadFile(command.Markdown.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", command.Markdown.TemplatePath, err)
		}

		opt.Markdown.TemplateText = string(customTemplate)
	}

	artifacts, err := helixdoc.GenerateAllWith(context.Background(), docs, opt, command.Formats...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if command.Stdout {
		for _, artifact := range artifacts {
			if _, err := io.WriteString(runner.stdout, artifact.Content); err != nil {
				return fmt.Errorf("write %s to stdout: %w", artifact.Format, err)
			}
		}

		return nil
	}

	if err := os.MkdirAll(command.OutputDir, 0o750); err != nil {
		return fmt.Errorf("create output dir %q: %w", command.OutputDir, err)
	}

	for _, artifact := range artifacts {
		outputPath := filepath.Join(command.OutputDir, artifact.Name)
		if err := os.WriteFile(outputPath, []byte(artifact.Content), 0o600); err != nil {
			return fmt.Errorf("write %s file %q: %w", artifact.Format, outputPath, err)
		}

		logger.Info("artifact written",
			zap.String("format", artifact.Format),
			zap.String("path", outputPath),
			zap.Int("bytes", len(artifact.Content)),
		)
	}

	return nil
}

// runFormats prints registered format keys with their default file names.
func (runner *cliRunner) runFormats() error {
	for _, format := range helixdoc.Formats() {
		backend, err := helixdoc.Lookup(format)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(runner.stdout, "%-4s %s\n", format, backend.OutputName()); err != nil {
			return fmt.Errorf("write formats: %w", err)
		}
	}

	return nil
}

// logger builds a zap logger on stderr from global flags.
func (runner *cliRunner) logger() *zap.Logger {
	level := zapcore.InfoLevel
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if runner.options != nil {
		if runner.options.Verbose {
			level = zapcore.DebugLevel
		}

		if runner.options.JSONLog {
			encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(runner.stderr), level))
}

// writeCLIError writes one error line to output.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs wires commands, loads the optional INI file and parses args.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Formats.runner = runner
	options.Version.runner = runner
	runner.options = options

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	if configPath := configArg(args); configPath != "" {
		if err := flags.NewIniParser(parser).ParseFile(configPath); err != nil {
			return fmt.Errorf("read config %q: %w", configPath, err)
		}
	}

	_, err := parser.ParseArgs(args)
	return err
}

// configArg finds the --config value before full parsing so INI values can
// be applied first.
func configArg(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}

		for _, prefix := range []string{"--config=", "-c="} {
			if value, ok := strings.CutPrefix(arg, prefix); ok {
				return value
			}
		}

		if value, ok := strings.CutPrefix(arg, "-c"); ok && value != "" && !strings.HasPrefix(value, "=") {
			return value
		}

		if (arg == "--config" || arg == "-c") && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}

// applyCommandLongDescriptions sets help text with examples for each command.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate artifacts from a local schema directory.
Classes and Structs hold instance classes; StaticClasses and UtilityClasses
hold static classes; Enums.json holds the enum table. Files starting with "_"
are skipped.

Examples:
> $ %s generate ./schema
> $ %s generate -f lua -f yml -o .luarc ./schema
> $ %s generate -f md --stdout ./schema > reference.md
`, programName, programName, programName)),
		"formats": strings.TrimSpace(`
List output format keys and their file names.
`),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo prints build metadata.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
