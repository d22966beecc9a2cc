// Package builder constructs KairosDB request bodies with a fluent API.
//
// MetricBuilder produces the push payload for /api/v1/datapoints;
// QueryBuilder produces the query payload shared by the query, query/tags,
// and delete endpoints.
//
//	mb := builder.NewMetricBuilder()
//	mb.AddMetric("cpu.idle").
//	    AddTag("host", "web01").
//	    AddDataPoint(time.Now().UnixMilli(), 98.2)
//
//	qb := builder.NewQueryBuilder()
//	qb.SetRelativeStart(2, builder.Hours)
//	qb.AddMetric("cpu.idle").
//	    AddTag("host", "web01").
//	    AddAggregator("avg", 1, builder.Minutes)
//
// Build validates before serializing; a builder with missing required fields
// returns an error wrapping ErrInvalid and nothing is sent to the server.
package builder
