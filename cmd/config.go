package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/kallumq/Data-Display-site/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set dataview configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "data_url: %s\n", cfg.DataURL)
		fmt.Fprintf(out, "http_timeout_sec: %d\n", cfg.HTTPTimeoutSec)
		fmt.Fprintf(out, "status_auto_hide_ms: %d\n", cfg.StatusAutoHideMs)
		if cfg.ChartDir != "" {
			fmt.Fprintf(out, "chart_dir: %s\n", cfg.ChartDir)
		}
		fmt.Fprintf(out, "chart_format: %s\n", cfg.ChartFormat)
		fmt.Fprintf(out, "chart_width: %d\n", cfg.ChartWidth)
		fmt.Fprintf(out, "chart_height: %d\n", cfg.ChartHeight)
		fmt.Fprintf(out, "max_cell_width: %d\n", cfg.MaxCellWidth)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_url":
			cfg.DataURL = val
		case "chart_dir":
			cfg.ChartDir = val
		case "chart_format":
			switch strings.ToLower(val) {
			case "svg", "png":
				cfg.ChartFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid chart_format: %s (use svg or png)", val)
			}
		case "http_timeout_sec", "status_auto_hide_ms", "chart_width", "chart_height", "max_cell_width":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			switch key {
			case "http_timeout_sec":
				cfg.HTTPTimeoutSec = i
			case "status_auto_hide_ms":
				cfg.StatusAutoHideMs = i
			case "chart_width":
				cfg.ChartWidth = i
			case "chart_height":
				cfg.ChartHeight = i
			case "max_cell_width":
				cfg.MaxCellWidth = i
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
