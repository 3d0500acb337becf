// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/gqlmarkdown

// gqlmarkdown generates markdown documentation from GraphQL schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/gqlmarkdown"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/gqlmarkdown"
	_buildTime string
)

// cliOptions describes gqlmarkdown CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Homepage homepageCommand `command:"homepage" description:"Print built-in homepage template"`
	Generate generateCommand `command:"generate" description:"Generate markdown documentation from GraphQL schema"`
}

// outputFlags groups document placement flags.
type outputFlags struct {
	RootPath    string `short:"r" long:"root-path" description:"Output directory of generated documentation"`
	BaseURL     string `short:"b" long:"base" description:"URL segment of generated documents"`
	LinkRoot    string `short:"l" long:"link" description:"Root prefix of cross-links"`
	Homepage    string `long:"homepage" description:"Homepage template file copied to output directory"`
	Hierarchy   string `long:"hierarchy" description:"Directory layout" choice:"api" choice:"entity" choice:"flat"`
	SidebarName string `long:"sidebar" description:"Sidebar descriptor name"`
	Index       bool   `long:"index" description:"Generate index page for every category"`
	Pretty      bool   `long:"pretty" description:"Prettify generated files"`
	NoPaging    bool   `long:"no-pagination" description:"Disable previous and next page links"`
	NoTOC       bool   `long:"no-toc" description:"Hide table of contents"`
	Workers     int    `short:"w" long:"workers" description:"Parallel document writers (0 selects CPU count)"`
}

// printFlags groups document content flags.
type printFlags struct {
	Deprecated       string   `long:"deprecated" description:"Deprecated entities display policy" choice:"default" choice:"group" choice:"skip"`
	GroupBy          string   `long:"group-by-directive" description:"Group entities by directive argument, @directive(field|=fallback)"`
	SkipDirectives   []string `long:"skip" description:"Skip entities and fields annotated with directive (repeatable)"`
	NoCode           bool     `long:"no-code" description:"Hide SDL code section"`
	NoRelated        bool     `long:"no-related" description:"Hide related types sections"`
	NoBadges         bool     `long:"no-badges" description:"Hide type badges"`
	ParentTypePrefix bool     `long:"parent-type-prefix" description:"Prefix member anchors with parent type name"`
}

// logFlags groups verbosity flags.
type logFlags struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	Quiet   bool `short:"q" long:"quiet" description:"Log warnings and errors only"`
}

// generateCommand renders documentation from schema source.
type generateCommand struct {
	runner *cliRunner

	Config string `short:"c" long:"config" description:"Configuration file (.yaml, .yml or .toml)"`
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Schema source: SDL file or glob (.graphql, .graphqls, .gql) or introspection JSON (optional when set in config)"`
	} `positional-args:"yes"`

	OutputFlags outputFlags `group:"Output"`
	PrintFlags  printFlags  `group:"Print"`
	LogFlags    logFlags    `group:"Logging"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// homepageCommand exports built-in homepage template.
type homepageCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs homepage subcommand.
func (command *homepageCommand) Execute(_ []string) error {
	return command.runner.runHomepage(command.Args.Output)
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
	ctx         context.Context
	stdout      io.Writer
	stderr      io.Writer
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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runContext(context.Background(), args, stdout, stderr)
}

// runContext executes CLI logic bound to ctx.
func runContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "gqlmarkdown"
	}

	runner := cliRunner{
		ctx:         ctx,
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

// runGenerate resolves configuration layers and runs generator.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	cfg, err := gqlmarkdown.LoadConfig(command.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	applyFlags(&cfg, command)

	opt, err := cfg.Options()
	if err != nil {
		return err
	}

	if opt.Schema == "" {
		return errors.New("schema source is required (positional argument or \"schema\" in config)")
	}

	generator := &gqlmarkdown.Generator{
		Logger: gqlmarkdown.NewLogger(runner.stderr, logLevel(command.LogFlags)),
	}

	report, err := generator.Generate(runner.ctx, opt)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	_, err = fmt.Fprintf(runner.stdout, "generated %d documents in %s (%d skipped, %s)\n",
		len(report.Documents),
		opt.Render.OutputDir,
		len(report.Skipped),
		report.Duration.Round(time.Millisecond),
	)
	return err
}

// applyFlags overlays explicitly set CLI flags on configuration.
func applyFlags(cfg *gqlmarkdown.Config, command *generateCommand) {
	setString := func(target *string, value string) {
		if strings.TrimSpace(value) != "" {
			*target = value
		}
	}

	setString(&cfg.Schema, command.Args.Schema)

	output := command.OutputFlags
	setString(&cfg.OutputDir, output.RootPath)
	setString(&cfg.BaseURL, output.BaseURL)
	setString(&cfg.LinkRoot, output.LinkRoot)
	setString(&cfg.Homepage, output.Homepage)
	setString(&cfg.Hierarchy, output.Hierarchy)
	setString(&cfg.SidebarName, output.SidebarName)
	if output.Index {
		cfg.Index = true
	}

	if output.Pretty {
		cfg.Pretty = true
	}

	if output.NoPaging {
		cfg.Pagination = false
	}

	if output.NoTOC {
		cfg.TOC = false
	}

	if output.Workers > 0 {
		cfg.Workers = output.Workers
	}

	printOpt := command.PrintFlags
	setString(&cfg.PrintTypeOptions.Deprecated, printOpt.Deprecated)
	setString(&cfg.GroupBy, printOpt.GroupBy)
	if len(printOpt.SkipDirectives) > 0 {
		cfg.SkipDocDirectives = append(cfg.SkipDocDirectives, printOpt.SkipDirectives...)
	}

	if printOpt.NoCode {
		cfg.PrintTypeOptions.CodeSection = false
	}

	if printOpt.NoRelated {
		cfg.PrintTypeOptions.RelatedTypes = false
	}

	if printOpt.NoBadges {
		cfg.PrintTypeOptions.TypeBadges = false
	}

	if printOpt.ParentTypePrefix {
		cfg.PrintTypeOptions.ParentTypePrefix = true
	}
}

// logLevel maps verbosity flags to logger level.
func logLevel(opt logFlags) log.Level {
	switch {
	case opt.Verbose:
		return log.DebugLevel
	case opt.Quiet:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// runHomepage writes built-in homepage template to stdout or file.
func (runner *cliRunner) runHomepage(outputPath string) error {
	text, err := gqlmarkdown.DefaultHomepage()
	if err != nil {
		return err
	}

	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write homepage to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write homepage file %q: %w", outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Homepage.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	return err
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate one markdown document per schema entity with category descriptors,
sidebar descriptor and homepage.
Configuration file values are overridden by GQLMD_* environment variables,
which are overridden by flags.

Examples:
> $ %s generate schema.graphql
> $ %s generate --hierarchy entity --group-by-directive '@doc(category|=Common)' 'schema/*.graphqls'
> $ %s generate -c gqlmarkdown.yaml --deprecated group
`, programName, programName, programName)),
		"homepage": strings.TrimSpace(fmt.Sprintf(`
Print built-in homepage template.
Use it as a starting point for a custom --homepage file.

Examples:
> $ %s homepage > homepage.md
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
