package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/go-kairosdb/kairosdb"
	"github.com/wesleyorama2/go-kairosdb/response"
)

var metricNamesCmd = &cobra.Command{
	Use:   "metricnames",
	Short: "List all metric names on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNames(cmd, func(c *kairosdb.Client) (*response.GetResponse, error) {
			return c.MetricNames(cmd.Context())
		})
	},
}

var tagNamesCmd = &cobra.Command{
	Use:   "tagnames",
	Short: "List all tag names on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNames(cmd, func(c *kairosdb.Client) (*response.GetResponse, error) {
			return c.TagNames(cmd.Context())
		})
	},
}

var tagValuesCmd = &cobra.Command{
	Use:   "tagvalues",
	Short: "List all tag values on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNames(cmd, func(c *kairosdb.Client) (*response.GetResponse, error) {
			return c.TagValues(cmd.Context())
		})
	},
}

func runNames(cmd *cobra.Command, list func(*kairosdb.Client) (*response.GetResponse, error)) error {
	client, formatter, err := newClient(cmd)
	if err != nil {
		return err
	}

	resp, err := list(client)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNames(resp))
	return nil
}
