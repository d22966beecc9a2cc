// Package kairosdb is a client for the KairosDB time-series database's REST
// API: pushing metrics, querying data points, and deleting data.
//
// Basic Usage:
//
//	client, err := kairosdb.New("http://kairos.example.com:8080")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mb := builder.NewMetricBuilder()
//	mb.AddMetric("cpu.idle").
//	    AddTag("host", "web01").
//	    AddDataPoint(time.Now().UnixMilli(), 98.2)
//
//	resp, err := client.PushMetrics(context.Background(), mb)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//
// Querying:
//
//	qb := builder.NewQueryBuilder()
//	qb.SetRelativeStart(2, builder.Hours)
//	qb.AddMetric("cpu.idle").AddTag("host", "web01")
//
//	qr, err := client.Query(context.Background(), qb)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, result := range qr.Results {
//	    fmt.Printf("%s: %d points\n", result.Name, len(result.Values))
//	}
//
// HTTP error statuses are data, not Go errors: a 400 query comes back as a
// QueryResponse with StatusCode 400 and the server's messages in Errors, so
// callers branch on the status code instead of unwrapping errors. Go errors
// are reserved for argument mistakes, transport failures, and payloads the
// client cannot decode.
//
// Custom group types:
//
// Query group_by values are typed by a string tag. "number" and "text" are
// built in; RegisterCustomDataType adds more. Register custom types before
// issuing queries that use them.
//
// # Thread Safety
//
// Client is safe for concurrent use. Registration is not synchronized with
// in-flight decodes of the same tag, so configure custom types up front.
package kairosdb
