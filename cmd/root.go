package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	cfgpkg "github.com/kallumq/Data-Display-site/internal/config"
	"github.com/kallumq/Data-Display-site/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// HTTP flag (overrides config if set)
	flagHTTPTimeoutSec int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:           "dataview",
	Short:         "dataview: explore a tabular dataset from the terminal",
	Long:          `dataview loads a JSON, CSV or YAML dataset, infers which columns are numeric, prints it as a searchable table and draws a line chart for every numeric column.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dataview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{DataURL: "data.json", StatusAutoHideMs: 2500, ChartFormat: "svg", ChartWidth: 800, ChartHeight: 300, MaxCellWidth: 40}
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
}

// resolveLocation picks the dataset location from args or config.
func resolveLocation(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != nil && cfg.DataURL != "" {
		return cfg.DataURL
	}
	return "data.json"
}

func newLoader() *dataset.Loader {
	timeout := 0
	if cfg != nil {
		timeout = cfg.HTTPTimeoutSec
	}
	return dataset.NewLoader(time.Duration(timeout) * time.Second)
}

// debugWriter returns stderr when --debug is set.
func debugWriter(cmd *cobra.Command) io.Writer {
	if !debug {
		return nil
	}
	return cmd.ErrOrStderr()
}
