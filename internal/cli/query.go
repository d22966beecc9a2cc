package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/go-kairosdb/builder"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query data points for a metric",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, _ := cmd.Flags().GetString("metric")
		start, _ := cmd.Flags().GetString("start")
		tags, _ := cmd.Flags().GetStringArray("tag")
		limit, _ := cmd.Flags().GetInt("limit")

		value, unit, err := parseRelative(start)
		if err != nil {
			return err
		}

		qb := builder.NewQueryBuilder()
		qb.SetRelativeStart(value, unit)
		qm := qb.AddMetric(metric)
		if limit > 0 {
			qm.SetLimit(limit)
		}
		for _, tag := range tags {
			parts := strings.SplitN(tag, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid tag %q: expected name=value", tag)
			}
			qm.AddTag(parts[0], parts[1])
		}

		client, formatter, err := newClient(cmd)
		if err != nil {
			return err
		}

		resp, err := client.Query(cmd.Context(), qb)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuery(resp))
		return nil
	},
}

func init() {
	queryCmd.Flags().StringP("metric", "m", "", "Metric name to query")
	queryCmd.Flags().StringP("start", "s", "1h", "Relative start, e.g. 30s, 5m, 2h, 7d")
	queryCmd.Flags().StringArray("tag", []string{}, "Tag filter as name=value (can be used multiple times)")
	queryCmd.Flags().Int("limit", 0, "Maximum data points per metric")
	queryCmd.MarkFlagRequired("metric")
}
