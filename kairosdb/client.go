package kairosdb

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/wesleyorama2/go-kairosdb/builder"
	"github.com/wesleyorama2/go-kairosdb/internal/stats"
	"github.com/wesleyorama2/go-kairosdb/response"
	"github.com/wesleyorama2/go-kairosdb/transport"
)

// Endpoint paths relative to the base URL.
const (
	pathMetricNames  = "/api/v1/metricnames"
	pathTagNames     = "/api/v1/tagnames"
	pathTagValues    = "/api/v1/tagvalues"
	pathQueryTags    = "/api/v1/datapoints/query/tags"
	pathQuery        = "/api/v1/datapoints/query"
	pathDataPoints   = "/api/v1/datapoints"
	pathDeleteQuery  = "/api/v1/datapoints/delete"
	pathMetricPrefix = "/api/v1/metric/"

	// deleteMetricStatsKey keeps per-metric deletes under one stats bucket.
	deleteMetricStatsKey = pathMetricPrefix + "{name}"
)

// Client talks to one KairosDB server.
type Client struct {
	baseURL   string
	transport transport.Transport
	registry  *response.TypeRegistry
	recorder  *stats.Recorder
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithTransport replaces the default HTTP transport. Useful for tests and
// for callers with their own TLS, proxy, or retry needs.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithRegistry shares a type registry between clients, so custom group types
// registered once apply to all of them. Without this option each client owns
// a fresh registry.
func WithRegistry(reg *response.TypeRegistry) Option {
	return func(c *Client) {
		c.registry = reg
	}
}

// WithTransportOptions configures the default HTTP transport, e.g. timeout
// and static headers. Ignored when WithTransport is also given.
func WithTransportOptions(options ...transport.Option) Option {
	return func(c *Client) {
		if c.transport == nil {
			c.transport = transport.NewHTTPTransport(options...)
		}
	}
}

// New creates a client for the KairosDB server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidArgument)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not a valid base URL", ErrInvalidArgument, baseURL)
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		registry: response.NewTypeRegistry(),
		recorder: stats.NewRecorder(),
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.NewHTTPTransport()
	}

	return c, nil
}

// MetricNames lists all metric names the server knows.
func (c *Client) MetricNames(ctx context.Context) (*response.GetResponse, error) {
	return c.getNames(ctx, pathMetricNames)
}

// TagNames lists all tag names the server knows.
func (c *Client) TagNames(ctx context.Context) (*response.GetResponse, error) {
	return c.getNames(ctx, pathTagNames)
}

// TagValues lists all tag values the server knows.
func (c *Client) TagValues(ctx context.Context) (*response.GetResponse, error) {
	return c.getNames(ctx, pathTagValues)
}

// TagNamesForQuery lists the tag names present on the series a query would
// match.
func (c *Client) TagNamesForQuery(ctx context.Context, qb *builder.QueryBuilder) (*response.GetResponse, error) {
	if qb == nil {
		return nil, fmt.Errorf("%w: query builder is nil", ErrInvalidArgument)
	}
	body, err := qb.Build()
	if err != nil {
		return nil, err
	}

	defer c.observe(pathQueryTags, time.Now())
	res, err := c.transport.Post(ctx, c.baseURL+pathQueryTags, body)
	if err != nil {
		return nil, err
	}
	return c.namesResponse(res)
}

// Query runs a datapoints query. HTTP error statuses are not Go errors: the
// returned QueryResponse carries the status code and the server's error
// messages, with no results.
func (c *Client) Query(ctx context.Context, qb *builder.QueryBuilder) (*response.QueryResponse, error) {
	if qb == nil {
		return nil, fmt.Errorf("%w: query builder is nil", ErrInvalidArgument)
	}
	body, err := qb.Build()
	if err != nil {
		return nil, err
	}

	defer c.observe(pathQuery, time.Now())
	res, err := c.transport.Post(ctx, c.baseURL+pathQuery, body)
	if err != nil {
		return nil, err
	}
	defer closeBody(res.Body)

	// A bodiless response is valid for any status: carry the code through.
	if res.Body == nil {
		return &response.QueryResponse{StatusCode: res.StatusCode}, nil
	}

	if res.StatusCode >= 400 {
		errs, err := response.DecodeErrors(res.Body)
		if err != nil {
			return nil, err
		}
		return &response.QueryResponse{StatusCode: res.StatusCode, Errors: errs}, nil
	}

	qr, err := response.DecodeQuery(res.Body, c.registry)
	if err != nil {
		return nil, err
	}
	qr.StatusCode = res.StatusCode
	return qr, nil
}

// PushMetrics sends the builder's metrics to the server.
func (c *Client) PushMetrics(ctx context.Context, mb *builder.MetricBuilder) (*response.Response, error) {
	if mb == nil {
		return nil, fmt.Errorf("%w: metric builder is nil", ErrInvalidArgument)
	}
	body, err := mb.Build()
	if err != nil {
		return nil, err
	}

	defer c.observe(pathDataPoints, time.Now())
	res, err := c.transport.Post(ctx, c.baseURL+pathDataPoints, body)
	if err != nil {
		return nil, err
	}
	return c.wrapResponse(res)
}

// DeleteMetric deletes a metric and all of its data points.
func (c *Client) DeleteMetric(ctx context.Context, name string) (*response.Response, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: metric name is required", ErrInvalidArgument)
	}

	defer c.observe(deleteMetricStatsKey, time.Now())
	res, err := c.transport.Delete(ctx, c.baseURL+pathMetricPrefix+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	return c.wrapResponse(res)
}

// DeleteByQuery deletes the data points a query would match.
func (c *Client) DeleteByQuery(ctx context.Context, qb *builder.QueryBuilder) (*response.Response, error) {
	if qb == nil {
		return nil, fmt.Errorf("%w: query builder is nil", ErrInvalidArgument)
	}
	body, err := qb.Build()
	if err != nil {
		return nil, err
	}

	defer c.observe(pathDeleteQuery, time.Now())
	res, err := c.transport.Post(ctx, c.baseURL+pathDeleteQuery, body)
	if err != nil {
		return nil, err
	}
	return c.wrapResponse(res)
}

// RegisterCustomDataType maps a group-type tag to the decoder for its
// values. Registering an existing tag, including the "number" and "text"
// built-ins, fails with response.ErrDuplicateTag.
func (c *Client) RegisterCustomDataType(tag string, dec response.ValueDecoder) error {
	if tag == "" {
		return fmt.Errorf("%w: group type tag is required", ErrInvalidArgument)
	}
	if dec == nil {
		return fmt.Errorf("%w: value decoder is nil", ErrInvalidArgument)
	}
	return c.registry.Register(tag, dec)
}

// DataPointDecoder returns the decoder registered for a group-type tag, or
// false if none is registered. Lookup only; absence is not an error.
func (c *Client) DataPointDecoder(tag string) (response.ValueDecoder, bool) {
	return c.registry.Resolve(tag)
}

// CallStats is a latency snapshot for one endpoint.
type CallStats struct {
	Count int64
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// Stats returns per-endpoint latency percentiles for the calls this client
// has made.
func (c *Client) Stats() map[string]CallStats {
	snap := c.recorder.Snapshot()
	out := make(map[string]CallStats, len(snap))
	for endpoint, s := range snap {
		out[endpoint] = CallStats{
			Count: s.Count,
			P50:   s.P50,
			P95:   s.P95,
			P99:   s.P99,
			Max:   s.Max,
		}
	}
	return out
}

func (c *Client) getNames(ctx context.Context, path string) (*response.GetResponse, error) {
	defer c.observe(path, time.Now())
	res, err := c.transport.Get(ctx, c.baseURL+path)
	if err != nil {
		return nil, err
	}
	return c.namesResponse(res)
}

// namesResponse maps a transport result to a GetResponse. Error statuses
// carry only the code: their bodies are not in name-list shape, so no decode
// is attempted.
func (c *Client) namesResponse(res *transport.Response) (*response.GetResponse, error) {
	defer closeBody(res.Body)

	if res.StatusCode >= 400 {
		return &response.GetResponse{StatusCode: res.StatusCode}, nil
	}
	if res.Body == nil {
		return nil, fmt.Errorf("%w: expected a name list", response.ErrMissingBody)
	}

	names, err := response.DecodeNames(res.Body)
	if err != nil {
		return nil, err
	}
	return &response.GetResponse{StatusCode: res.StatusCode, Names: names}, nil
}

// wrapResponse maps a transport result to a push/delete Response. The body,
// when present, is decoded as an error payload regardless of status, since
// partial-success responses report errors alongside 2xx codes. A body that
// is present but not parsable is a malformed payload even on success.
func (c *Client) wrapResponse(res *transport.Response) (*response.Response, error) {
	defer closeBody(res.Body)

	out := &response.Response{StatusCode: res.StatusCode}
	if res.Body != nil {
		errs, err := response.DecodeErrors(res.Body)
		if err != nil {
			return nil, err
		}
		out.Errors = errs
	}
	return out, nil
}

func (c *Client) observe(endpoint string, start time.Time) {
	c.recorder.Record(endpoint, time.Since(start))
}

// closeBody drains and closes a response stream. Close failures never mask
// the primary result.
func closeBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	io.Copy(io.Discard, body)
	body.Close()
}
