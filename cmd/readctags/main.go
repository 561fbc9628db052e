package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"readctags/internal/config"
	"readctags/internal/locator"
	"readctags/internal/tags"
	"readctags/pkg/logger"
	"readctags/pkg/style"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	out   io.Writer
	paint style.Painter
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		paths      []string
		root       string
		logLevel   string
		noColor    bool
	)
	a := &app{out: stdout}

	rootCmd := &cobra.Command{
		Use:   "readctags",
		Short: "Read and check Universal Ctags tags files",
		Long: `readctags finds the first tags file in its search path (.git/tags, tags,
tmp/tags by default), parses it and answers lookups against it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("path") {
				cfg.SearchPaths = paths
			}
			if root != "" {
				cfg.Root = root
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if noColor {
				cfg.NoColor = true
			}

			log, err := logger.New(logger.Config{
				LogFile:  cfg.LogFile,
				LogLevel: cfg.LogLevel,
				Format:   cfg.LogFormat,
				Silent:   cfg.LogSilent,
			})
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}

			a.cfg = cfg
			a.log = log.With("command", cmd.Name())
			a.paint = style.NewPainter(style.Enabled(stdout, cfg.NoColor))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return a.log.Close()
			}
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", config.DefaultPath(), "Configuration file (YAML)")
	flags.StringSliceVarP(&paths, "path", "p", nil, "Candidate tags file, repeatable; replaces the configured search path")
	flags.StringVar(&root, "root", "", "Directory relative candidates are resolved against")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newCheckCmd(a),
		newFindCmd(a),
		newQueryCmd(a),
		newStatsCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

func (a *app) locator() *locator.Locator {
	return locator.New(a.cfg.SearchPaths,
		locator.WithRoot(a.cfg.Root),
		locator.WithLogger(a.log),
	)
}

func (a *app) loadIndex() (*tags.Index, error) {
	set, _, err := a.locator().Load()
	if err != nil {
		return nil, err
	}
	return tags.NewIndex(set), nil
}

func (a *app) printEntries(entries []tags.TagEntry) {
	for _, entry := range entries {
		fmt.Fprintln(a.out, entry.Encode())
	}
}
