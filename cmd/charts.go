package cmd

import (
	"fmt"
	"strings"

	"github.com/kallumq/Data-Display-site/internal/analysis"
	"github.com/kallumq/Data-Display-site/internal/utils"
	"github.com/kallumq/Data-Display-site/internal/view"
	"github.com/spf13/cobra"
)

var (
	chartsQuery  string
	chartsFormat string
	chartsOutput string
)

// chartsDocument is the exported form of a filtered view's charts.
type chartsDocument struct {
	Source  string               `json:"source" yaml:"source"`
	Query   string               `json:"query" yaml:"query"`
	Rows    int                  `json:"rows" yaml:"rows"`
	Columns []string             `json:"columns" yaml:"columns"`
	Numeric []string             `json:"numeric" yaml:"numeric"`
	Charts  []analysis.ChartSpec `json:"charts" yaml:"charts"`
}

var chartsCmd = &cobra.Command{
	Use:   "charts [location]",
	Short: "Print the chart specs for the numeric columns of a (filtered) dataset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(chartsFormat))
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported --format: %s (use json or yaml)", chartsFormat)
		}
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
		rows := analysis.Filter(ds, chartsQuery)
		doc := chartsDocument{
			Source:  location,
			Query:   analysis.NormalizeQuery(chartsQuery),
			Rows:    len(rows),
			Columns: s.Columns,
			Numeric: s.Numeric,
			Charts:  analysis.BuildCharts(rows, s.Numeric, s.Columns),
		}

		var body []byte
		if format == "yaml" {
			body, err = utils.YAML(doc)
		} else {
			body, err = utils.PrettyJSON(doc)
		}
		if err != nil {
			return err
		}
		return writeOutput(cmd, chartsOutput, body, "chart specs")
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVarP(&chartsQuery, "query", "q", "", "search query applied before building charts")
	chartsCmd.Flags().StringVar(&chartsFormat, "format", "json", "output format: json | yaml")
	chartsCmd.Flags().StringVarP(&chartsOutput, "output", "o", "", "optional path to write the chart specs")
}
