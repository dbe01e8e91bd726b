package main

import (
	"fmt"
	"io"
	"os"

	"workbook-recon/internal/config"
	"workbook-recon/internal/inspector"
	"workbook-recon/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "workbook-recon"
	appVersion = "1.0.0"
	appDesc    = "Prints a diagnostic summary of a spreadsheet workbook"
)

// usageHint is printed when no workbook path is given
const usageHint = "Please provide an Excel file path as argument"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	defer logger.Close()

	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := config.New()
	var configPath string
	var noProgress bool

	cmd := &cobra.Command{
		Use:           appName + " [file.xlsx]",
		Short:         appDesc,
		Long:          appDesc + ": sheet names, row and column counts, headers,\nsample rows, non-null counts and document/contact heuristics.",
		Version:       appVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(stdout, usageHint)
				return nil
			}
			if len(args) > 1 {
				logger.Warn("Ignoring extra arguments: %v", args[1:])
			}
			return analyze(v, configPath, noProgress, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Path to configuration file")
	flags.BoolP("verbose", "v", false, "Enable verbose logging (DEBUG level)")
	flags.String("log-file", "", "Also write logs to this file")
	flags.StringSlice("sheet", nil, "Only report on these sheets (repeatable)")
	flags.BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	bindFlag(v, cmd, "log.verbose", "verbose")
	bindFlag(v, cmd, "log.file", "log-file")
	bindFlag(v, cmd, "analysis.sheets", "sheet")

	return cmd
}

// bindFlag lets a command-line flag override a config key
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}

func analyze(v *viper.Viper, configPath string, noProgress bool, path string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if noProgress {
		cfg.UI.Progress = false
	}

	if err := logger.Init(stderr, cfg.Log.File, cfg.Log.Verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logger.IsVerbose() {
		cfg.Print(stderr)
	}
	if logPath := logger.GetLogFilePath(); logPath != "" {
		logger.Info("Logging to %s", logPath)
	}

	summary, err := inspector.New(cfg, stdout).Analyze(path)
	if err != nil {
		return err
	}

	logger.Debug("%d of %d sheets reported, %d failed", summary.Analyzed+summary.Empty, len(summary.SheetNames), len(summary.Failed))
	return nil
}
