package builder

import (
	"encoding/json"
	"fmt"
	"time"
)

// QueryBuilder accumulates a datapoints query: a time window plus one or
// more metrics to match. The same body shape serves the query, query/tags,
// and delete endpoints.
type QueryBuilder struct {
	startAbsolute *time.Time
	startRelative *RelativeTime
	endAbsolute   *time.Time
	endRelative   *RelativeTime
	metrics       []*QueryMetric
}

// NewQueryBuilder creates an empty query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// SetAbsoluteStart sets the window start to a point in time, replacing any
// relative start.
func (b *QueryBuilder) SetAbsoluteStart(t time.Time) *QueryBuilder {
	b.startAbsolute = &t
	b.startRelative = nil
	return b
}

// SetRelativeStart sets the window start to an offset before now, replacing
// any absolute start.
func (b *QueryBuilder) SetRelativeStart(value int, unit TimeUnit) *QueryBuilder {
	b.startRelative = &RelativeTime{Value: value, Unit: unit}
	b.startAbsolute = nil
	return b
}

// SetAbsoluteEnd sets the window end to a point in time, replacing any
// relative end.
func (b *QueryBuilder) SetAbsoluteEnd(t time.Time) *QueryBuilder {
	b.endAbsolute = &t
	b.endRelative = nil
	return b
}

// SetRelativeEnd sets the window end to an offset before now, replacing any
// absolute end.
func (b *QueryBuilder) SetRelativeEnd(value int, unit TimeUnit) *QueryBuilder {
	b.endRelative = &RelativeTime{Value: value, Unit: unit}
	b.endAbsolute = nil
	return b
}

// AddMetric adds a metric to query and returns it for chaining.
func (b *QueryBuilder) AddMetric(name string) *QueryMetric {
	m := &QueryMetric{Name: name}
	b.metrics = append(b.metrics, m)
	return m
}

// Metrics returns the metrics added so far.
func (b *QueryBuilder) Metrics() []*QueryMetric {
	return b.metrics
}

type queryRequest struct {
	StartAbsolute int64          `json:"start_absolute,omitempty"`
	StartRelative *RelativeTime  `json:"start_relative,omitempty"`
	EndAbsolute   int64          `json:"end_absolute,omitempty"`
	EndRelative   *RelativeTime  `json:"end_relative,omitempty"`
	Metrics       []*QueryMetric `json:"metrics"`
}

// Build validates the query and serializes it to the wire form.
func (b *QueryBuilder) Build() ([]byte, error) {
	if b.startAbsolute == nil && b.startRelative == nil {
		return nil, fmt.Errorf("%w: query start is required", ErrInvalid)
	}
	if len(b.metrics) == 0 {
		return nil, fmt.Errorf("%w: query has no metrics", ErrInvalid)
	}
	if b.startRelative != nil && !b.startRelative.Unit.valid() {
		return nil, fmt.Errorf("%w: invalid start unit %q", ErrInvalid, b.startRelative.Unit)
	}
	if b.endRelative != nil && !b.endRelative.Unit.valid() {
		return nil, fmt.Errorf("%w: invalid end unit %q", ErrInvalid, b.endRelative.Unit)
	}
	if b.startAbsolute != nil && b.endAbsolute != nil && b.endAbsolute.Before(*b.startAbsolute) {
		return nil, fmt.Errorf("%w: query end precedes start", ErrInvalid)
	}
	for _, m := range b.metrics {
		if err := m.validate(); err != nil {
			return nil, err
		}
	}

	req := queryRequest{
		StartRelative: b.startRelative,
		EndRelative:   b.endRelative,
		Metrics:       b.metrics,
	}
	if b.startAbsolute != nil {
		req.StartAbsolute = b.startAbsolute.UnixMilli()
	}
	if b.endAbsolute != nil {
		req.EndAbsolute = b.endAbsolute.UnixMilli()
	}
	return json.Marshal(req)
}

// QueryMetric is one metric within a query: which series to match and how to
// aggregate them.
type QueryMetric struct {
	Name        string              `json:"name"`
	Tags        map[string][]string `json:"tags,omitempty"`
	Limit       int                 `json:"limit,omitempty"`
	Aggregators []Aggregator        `json:"aggregators,omitempty"`
}

// AddTag restricts the match to series carrying one of the given values for
// the tag.
func (m *QueryMetric) AddTag(name string, values ...string) *QueryMetric {
	if m.Tags == nil {
		m.Tags = make(map[string][]string)
	}
	m.Tags[name] = append(m.Tags[name], values...)
	return m
}

// SetLimit caps the number of data points returned for the metric.
func (m *QueryMetric) SetLimit(limit int) *QueryMetric {
	m.Limit = limit
	return m
}

// AddAggregator appends a sampling aggregator, e.g. ("sum", 1, Minutes).
// Aggregators apply in the order they were added.
func (m *QueryMetric) AddAggregator(name string, value int, unit TimeUnit) *QueryMetric {
	m.Aggregators = append(m.Aggregators, Aggregator{
		Name:     name,
		Sampling: &Sampling{Value: value, Unit: unit},
	})
	return m
}

func (m *QueryMetric) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: query metric name is required", ErrInvalid)
	}
	if m.Limit < 0 {
		return fmt.Errorf("%w: query metric %q has a negative limit", ErrInvalid, m.Name)
	}
	for _, a := range m.Aggregators {
		if a.Name == "" {
			return fmt.Errorf("%w: query metric %q has an unnamed aggregator", ErrInvalid, m.Name)
		}
		if a.Sampling != nil && !a.Sampling.Unit.valid() {
			return fmt.Errorf("%w: invalid sampling unit %q", ErrInvalid, a.Sampling.Unit)
		}
	}
	return nil
}

// Aggregator transforms matched data points server-side (sum, avg, max, ...).
type Aggregator struct {
	Name     string    `json:"name"`
	Sampling *Sampling `json:"sampling,omitempty"`
}

// Sampling is the window an aggregator operates over.
type Sampling struct {
	Value int      `json:"value"`
	Unit  TimeUnit `json:"unit"`
}
