package builder

import (
	"encoding/json"
	"fmt"
)

// MetricBuilder accumulates metrics and their data points for a push call.
type MetricBuilder struct {
	metrics []*Metric
}

// NewMetricBuilder creates an empty metric builder.
func NewMetricBuilder() *MetricBuilder {
	return &MetricBuilder{}
}

// AddMetric adds a metric and returns it for chaining tag and data point
// calls.
func (b *MetricBuilder) AddMetric(name string) *Metric {
	m := &Metric{Name: name}
	b.metrics = append(b.metrics, m)
	return m
}

// Metrics returns the metrics added so far.
func (b *MetricBuilder) Metrics() []*Metric {
	return b.metrics
}

// Build validates the accumulated metrics and serializes them to the wire
// form: a JSON array of metric objects with [timestamp, value] data point
// pairs.
func (b *MetricBuilder) Build() ([]byte, error) {
	if len(b.metrics) == 0 {
		return nil, fmt.Errorf("%w: no metrics added", ErrInvalid)
	}
	for _, m := range b.metrics {
		if err := m.validate(); err != nil {
			return nil, err
		}
	}
	return json.Marshal(b.metrics)
}

// Metric is one named series being pushed: its tags, optional TTL in
// seconds, and data points.
type Metric struct {
	Name       string            `json:"name"`
	Tags       map[string]string `json:"tags,omitempty"`
	TTL        int               `json:"ttl,omitempty"`
	DataPoints []dataPoint       `json:"datapoints"`
}

// AddTag adds a tag to the metric.
func (m *Metric) AddTag(name, value string) *Metric {
	if m.Tags == nil {
		m.Tags = make(map[string]string)
	}
	m.Tags[name] = value
	return m
}

// AddDataPoint adds a sample. Timestamp is milliseconds since the epoch.
func (m *Metric) AddDataPoint(timestamp int64, value interface{}) *Metric {
	m.DataPoints = append(m.DataPoints, dataPoint{timestamp: timestamp, value: value})
	return m
}

// AddTTL sets how long the data points live, in seconds.
func (m *Metric) AddTTL(seconds int) *Metric {
	m.TTL = seconds
	return m
}

func (m *Metric) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: metric name is required", ErrInvalid)
	}
	if len(m.DataPoints) == 0 {
		return fmt.Errorf("%w: metric %q has no data points", ErrInvalid, m.Name)
	}
	for name, value := range m.Tags {
		if name == "" || value == "" {
			return fmt.Errorf("%w: metric %q has an empty tag name or value", ErrInvalid, m.Name)
		}
	}
	if m.TTL < 0 {
		return fmt.Errorf("%w: metric %q has a negative ttl", ErrInvalid, m.Name)
	}
	return nil
}

// dataPoint marshals to the wire pair form, e.g. [1357019400000, 321.5].
type dataPoint struct {
	timestamp int64
	value     interface{}
}

func (d dataPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{d.timestamp, d.value})
}
