// Package cli implements the kairos command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/go-kairosdb/internal/config"
	"github.com/wesleyorama2/go-kairosdb/internal/output"
	"github.com/wesleyorama2/go-kairosdb/kairosdb"
	"github.com/wesleyorama2/go-kairosdb/transport"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "kairos",
	Short:   "A terminal client for the KairosDB time-series database",
	Version: version,
	Long: `Kairos is a terminal client for the KairosDB time-series database.
It pushes metrics, runs queries, lists metric and tag names, and deletes
data over the KairosDB REST API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringP("url", "u", "", "KairosDB server URL, e.g. http://localhost:8080")
	RootCmd.PersistentFlags().StringP("config", "c", "", "Path to a connection profile (YAML or JSON)")
	RootCmd.PersistentFlags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	RootCmd.AddCommand(metricNamesCmd)
	RootCmd.AddCommand(tagNamesCmd)
	RootCmd.AddCommand(tagValuesCmd)
	RootCmd.AddCommand(queryCmd)
	RootCmd.AddCommand(pushCmd)
	RootCmd.AddCommand(deleteCmd)
}

// newClient builds a client and formatter from the persistent flags,
// overlaying a connection profile when one is given. Flags win over the
// profile.
func newClient(cmd *cobra.Command) (*kairosdb.Client, *output.Formatter, error) {
	baseURL, _ := cmd.Flags().GetString("url")
	configPath, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")

	var headers map[string]string
	if configPath != "" {
		profile, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		if baseURL == "" {
			baseURL = profile.BaseURL
		}
		if !cmd.Flags().Changed("timeout") {
			timeout = profile.TimeoutDuration(timeout)
		}
		headers = profile.Headers
	}
	if baseURL == "" {
		return nil, nil, fmt.Errorf("server URL is required: pass --url or --config")
	}

	opts := []transport.Option{transport.WithTimeout(timeout)}
	for key, value := range headers {
		opts = append(opts, transport.WithHeader(key, value))
	}

	client, err := kairosdb.New(baseURL, kairosdb.WithTransportOptions(opts...))
	if err != nil {
		return nil, nil, err
	}

	formatter := output.NewFormatter(noColor || !output.IsTerminal(os.Stdout))
	return client, formatter, nil
}
