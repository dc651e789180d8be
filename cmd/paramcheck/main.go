// Command paramcheck validates a JSON parameter registry against a JSON
// schema, runs the custom invariant tests, optionally repairs the registry
// in place, and generates the proto/markdown/CSV artifacts once the registry
// is known-good.
//
// Usage:
//
//	paramcheck --file parameters.json --schema parameters.schema.json \
//	    --proto parameters.proto --csv_file parameters.csv --markdown_table
//
// Exit status is 0 on overall success and 1 on any load failure or
// validation failure.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subseawireless/paramcheck"
	"github.com/subseawireless/paramcheck/emit"
	"github.com/subseawireless/paramcheck/internal/config"
)

type cliOptions struct {
	file                 string
	schema               string
	proto                string
	csvFile              string
	configFile           string
	immediateExit        bool
	markdownTable        bool
	rewriteDefaultAccess bool
	rewriteAutoNumberID  bool
	verbose              bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "paramcheck",
		Short:         "Validate a parameter registry against a JSON schema and run custom tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfigDefaults(cmd, &opts); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return err
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Path to the JSON data file to validate")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Path to the JSON schema file to validate against")
	cmd.Flags().StringVar(&opts.proto, "proto", "", "Path to the protobuf file to be generated after successful validation")
	cmd.Flags().StringVar(&opts.csvFile, "csv_file", "", "Path to the CSV file to be generated after successful validation")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a YAML file with flag defaults (default: .paramcheck.yaml beside --file)")
	cmd.Flags().BoolVar(&opts.immediateExit, "immediate_exit", false, "Exit on first failure, otherwise complete subsequent tests")
	cmd.Flags().BoolVar(&opts.markdownTable, "markdown_table", false, "Print a human readable parameter table in github markdown format")
	cmd.Flags().BoolVar(&opts.rewriteDefaultAccess, "rewrite_default_access", false, "Rewrite the data file with default access added where none is specified")
	cmd.Flags().BoolVar(&opts.rewriteAutoNumberID, "rewrite_auto_number_id", false, "Rewrite the data file with automatically assigned IDs for sentinel-valued ones")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable debug logging to stderr")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// applyConfigDefaults fills flags the user did not set from the YAML config,
// if one exists. Explicit flags always win over the file.
func applyConfigDefaults(cmd *cobra.Command, opts *cliOptions) error {
	path := opts.configFile
	if path == "" {
		path = filepath.Join(filepath.Dir(opts.file), config.DefaultFileName)
	}

	cfg, err := config.LoadIfExists(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("proto") {
		opts.proto = orDefault(opts.proto, cfg.Proto)
	}
	if !flags.Changed("csv_file") {
		opts.csvFile = orDefault(opts.csvFile, cfg.CSVFile)
	}
	if !flags.Changed("immediate_exit") {
		opts.immediateExit = cfg.ImmediateExit
	}
	if !flags.Changed("markdown_table") {
		opts.markdownTable = cfg.MarkdownTable
	}
	if !flags.Changed("rewrite_default_access") {
		opts.rewriteDefaultAccess = cfg.RewriteDefaultAccess
	}
	if !flags.Changed("rewrite_auto_number_id") {
		opts.rewriteAutoNumberID = cfg.RewriteAutoNumberID
	}
	return nil
}

func run(cmd *cobra.Command, opts cliOptions) error {
	var runnerOpts []paramcheck.Option
	if opts.immediateExit {
		runnerOpts = append(runnerOpts, paramcheck.WithImmediateExit())
	}
	if opts.rewriteDefaultAccess {
		runnerOpts = append(runnerOpts, paramcheck.WithDefaultAccessBackfill())
	}
	if opts.rewriteAutoNumberID {
		runnerOpts = append(runnerOpts, paramcheck.WithAutoNumbering())
	}
	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		runnerOpts = append(runnerOpts, paramcheck.WithLogger(logger))
	}

	runner, err := paramcheck.New(runnerOpts...)
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), opts.file, opts.schema)
	if err != nil {
		return err
	}

	// Overall pass: generate whichever artifacts were requested, sorted by
	// integer ID.
	if err := emit.All(result.Doc.SortedByID(), emit.Request{
		ProtoPath:  opts.proto,
		CSVPath:    opts.csvFile,
		Table:      opts.markdownTable,
		Out:        os.Stdout,
		SourcePath: opts.file,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
