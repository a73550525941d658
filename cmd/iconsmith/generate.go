package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/history"
	"github.com/alexisbeaulieu97/iconsmith/internal/instructions"
	"github.com/alexisbeaulieu97/iconsmith/internal/logger"
	"github.com/alexisbeaulieu97/iconsmith/internal/pipeline"
)

type generateOptions struct {
	ConfigPath string
	Output     string
	Verbose    bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full asset set from a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose

			if err := validateGenerateOptions(opts); err != nil {
				return err
			}

			return generateCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Override the configured output directory")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	if cfg.Settings.LogLevel != "" && !opts.Verbose {
		level = cfg.Settings.LogLevel
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	log, err := logger.New(logger.Options{Level: level, HumanReadable: interactive})
	if err != nil {
		return err
	}

	store, err := history.NewStore(defaultHistoryPath())
	if err != nil {
		// Generation proceeds without history rather than failing.
		log.Error(err, "history store unavailable")
		store = nil
	}

	p := pipeline.New(cfg, log, store)
	result := p.Run(context.Background())

	fmt.Fprint(cmd.OutOrStdout(), instructions.Summary(result.OutputDir, len(result.Assets), len(result.Errors)))

	if !result.Success {
		for _, msg := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", msg)
		}
		return fmt.Errorf("generation finished with %d error(s)", len(result.Errors))
	}
	return nil
}
