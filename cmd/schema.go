package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/dataset"
	"github.com/kallumq/Data-Display-site/internal/utils"
	"github.com/kallumq/Data-Display-site/internal/view"
	"github.com/spf13/cobra"
)

var (
	schemaJSON       bool
	schemaSampleRows int
	schemaOutput     string
)

var schemaCmd = &cobra.Command{
	Use:   "schema [location]",
	Short: "Print the inferred columns and which ones are numeric",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location := resolveLocation(args)
		ds, err := loadDataset(cmd, location)
		if err != nil {
			if isEmpty(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠", view.MsgNoData)
				return nil
			}
			return err
		}
		s := analysis.InferSchema(ds)
		rep := analysis.NewReport(location, ds, s, schemaSampleRows)

		var body []byte
		if schemaJSON {
			body, err = utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
		} else {
			body = []byte(rep.Markdown())
		}
		return writeOutput(cmd, schemaOutput, body, "schema report")
	},
}

// loadDataset loads location and maps an empty result to ErrEmptyDataset.
func loadDataset(cmd *cobra.Command, location string) (dataset.Dataset, error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ds, err := newLoader().Load(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("%s: %w", location, dataset.ErrEmptyDataset)
	}
	if debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "[debug] loaded %d records from %s\n", len(ds), location)
	}
	return ds, nil
}

// writeOutput writes body to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, body []byte, what string) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(body)
		if err == nil && len(body) > 0 && body[len(body)-1] != '\n' {
			_, err = fmt.Fprintln(cmd.OutOrStdout())
		}
		return err
	}
	if err := utils.SafeWriteFile(path, body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s to %s\n", what, path)
	return nil
}

// isEmpty reports whether err is the empty-dataset condition.
func isEmpty(err error) bool { return errors.Is(err, dataset.ErrEmptyDataset) }

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the report as JSON")
	schemaCmd.Flags().IntVar(&schemaSampleRows, "sample-rows", 5, "number of head rows to include")
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "optional path to write the report")
}
