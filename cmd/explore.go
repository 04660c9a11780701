package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/kallumq/Data-Display-site/internal/dataset"
	"github.com/kallumq/Data-Display-site/internal/render"
	"github.com/kallumq/Data-Display-site/internal/view"
	"github.com/spf13/cobra"
)

var (
	expQueries     []string
	expChartDir    string
	expChartFormat string
)

var exploreCmd = &cobra.Command{
	Use:   "explore [location]",
	Short: "Load a dataset, print it with charts, then filter it by search input",
	Long: `Loads the dataset at location (a path or http(s) URL; default from config),
prints the table and one chart per numeric column, then treats every line read
from stdin as a new search query. Use --query to apply queries non-interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := resolveLocation(args)
		out := cmd.OutOrStdout()

		charts, err := chartSurface(out)
		if err != nil {
			return err
		}
		autoHide := time.Duration(cfg.StatusAutoHideMs) * time.Millisecond
		ctrl := view.NewController(location, newLoader(),
			render.NewTable(out, cfg.MaxCellWidth),
			charts,
			render.NewStatus(cmd.ErrOrStderr(), autoHide))
		ctrl.Debug = debugWriter(cmd)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		if err := ctrl.Start(ctx); err != nil {
			if errors.Is(err, dataset.ErrEmptyDataset) {
				return nil
			}
			return err
		}
		// Charts of the final view stay live: file charts remain on disk.
		if len(expQueries) > 0 {
			for _, q := range expQueries {
				fmt.Fprintf(out, "\n» search: %q\n", q)
				if err := ctrl.Search(q); err != nil {
					return err
				}
			}
			return nil
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Type a search query and press Enter (empty line shows all, Ctrl-D quits).")
		return readQueries(ctx, cmd.InOrStdin(), ctrl.Search)
	},
}

// readQueries feeds each line of r to search until EOF or ctx is done. Lines
// are read on a separate goroutine so an interrupt ends a blocked read.
func readQueries(ctx context.Context, r io.Reader, search func(string) error) error {
	lines := make(chan string)
	done := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		done <- sc.Err()
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-done:
			return err
		case q := <-lines:
			if err := search(q); err != nil {
				return err
			}
		}
	}
}

// chartSurface picks file-rendered charts when a chart dir is configured,
// terminal sparklines otherwise.
func chartSurface(out io.Writer) (view.ChartSurface, error) {
	dir := cfg.ChartDir
	if expChartDir != "" {
		dir = expChartDir
	}
	format := cfg.ChartFormat
	if expChartFormat != "" {
		format = expChartFormat
	}
	switch format {
	case "", "svg", "png":
	default:
		return nil, fmt.Errorf("unsupported --chart-format: %s (use svg or png)", format)
	}
	if dir == "" {
		return render.NewTextCharts(out), nil
	}
	fc := render.NewFileCharts(dir, format, cfg.ChartWidth, cfg.ChartHeight)
	fc.Log = out
	return fc, nil
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().StringArrayVarP(&expQueries, "query", "q", nil, "search query to apply (repeatable, applied in order)")
	exploreCmd.Flags().StringVar(&expChartDir, "chart-dir", "", "render chart images into this directory instead of sparklines")
	exploreCmd.Flags().StringVar(&expChartFormat, "chart-format", "", "chart image format: svg | png (default from config)")
}
