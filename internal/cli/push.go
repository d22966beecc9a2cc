package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/go-kairosdb/builder"
	"github.com/wesleyorama2/go-kairosdb/pkg/schema"
)

// metricFile matches the push payload shape, which is also the file format
// the push command accepts.
type metricFile []struct {
	Name       string            `json:"name"`
	Tags       map[string]string `json:"tags"`
	TTL        int               `json:"ttl"`
	Datapoints [][]interface{}   `json:"datapoints"`
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push data points from a JSON file",
	Long: `Push reads a JSON file holding an array of metrics in the KairosDB
datapoints format and sends it to the server:

  [{"name": "cpu.idle",
    "tags": {"host": "web01"},
    "datapoints": [[1357019400000, 98.2]]}]

The file is validated against the payload schema before anything is sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := schema.ValidatePush(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		mb, err := buildMetrics(data)
		if err != nil {
			return err
		}

		client, formatter, err := newClient(cmd)
		if err != nil {
			return err
		}

		resp, err := client.PushMetrics(cmd.Context(), mb)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))
		return nil
	},
}

// buildMetrics converts a validated payload document into a MetricBuilder.
// Numbers are read as json.Number so values round-trip without precision
// loss.
func buildMetrics(data []byte) (*builder.MetricBuilder, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var metrics metricFile
	if err := dec.Decode(&metrics); err != nil {
		return nil, err
	}

	mb := builder.NewMetricBuilder()
	for _, spec := range metrics {
		m := mb.AddMetric(spec.Name)
		for name, value := range spec.Tags {
			m.AddTag(name, value)
		}
		if spec.TTL > 0 {
			m.AddTTL(spec.TTL)
		}
		for _, point := range spec.Datapoints {
			// Schema validation already pinned each point to a
			// [timestamp, value] pair.
			num, ok := point[0].(json.Number)
			if !ok {
				return nil, fmt.Errorf("invalid timestamp %v", point[0])
			}
			ts, err := num.Int64()
			if err != nil {
				return nil, fmt.Errorf("invalid timestamp %v: %w", point[0], err)
			}
			m.AddDataPoint(ts, point[1])
		}
	}
	return mb, nil
}

func init() {
	pushCmd.Flags().StringP("file", "f", "", "Path to a JSON file of metrics")
	pushCmd.MarkFlagRequired("file")
}
