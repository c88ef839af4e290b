package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/config"
	"github.com/nguyentantai21042004/notebot/internal/logger"
)

var (
	configPath string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebot",
	Short: "Turn lecture recordings into corrected transcripts and subject summaries",
	Long: `notebot transcribes lecture recordings, corrects the transcript, writes a
subject-specific summary with Gemini and keeps every note in a local CSV store
with a plain-text copy per note.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// loadConfig reads .env and the config file. A missing default config file
// is not an error; an explicitly requested one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
}
