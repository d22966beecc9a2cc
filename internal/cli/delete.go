package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/go-kairosdb/builder"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a metric or matched data points",
}

var deleteMetricCmd = &cobra.Command{
	Use:   "metric NAME",
	Short: "Delete a metric and all of its data points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, formatter, err := newClient(cmd)
		if err != nil {
			return err
		}

		resp, err := client.DeleteMetric(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))
		return nil
	},
}

var deleteQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Delete the data points a query would match",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, _ := cmd.Flags().GetString("metric")
		start, _ := cmd.Flags().GetString("start")
		tags, _ := cmd.Flags().GetStringArray("tag")

		value, unit, err := parseRelative(start)
		if err != nil {
			return err
		}

		qb := builder.NewQueryBuilder()
		qb.SetRelativeStart(value, unit)
		qm := qb.AddMetric(metric)
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

		resp, err := client.DeleteByQuery(cmd.Context(), qb)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))
		return nil
	},
}

func init() {
	deleteQueryCmd.Flags().StringP("metric", "m", "", "Metric name to match")
	deleteQueryCmd.Flags().StringP("start", "s", "1h", "Relative start, e.g. 30s, 5m, 2h, 7d")
	deleteQueryCmd.Flags().StringArray("tag", []string{}, "Tag filter as name=value (can be used multiple times)")
	deleteQueryCmd.MarkFlagRequired("metric")

	deleteCmd.AddCommand(deleteMetricCmd)
	deleteCmd.AddCommand(deleteQueryCmd)
}
