package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	httpClient *http.Client
	headers    map[string]string
}

// Option is a function that configures an HTTPTransport.
type Option func(*HTTPTransport)

// NewHTTPTransport creates a transport with the given options.
func NewHTTPTransport(options ...Option) *HTTPTransport {
	t := &HTTPTransport{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(t)
	}

	return t
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *HTTPTransport) {
		t.httpClient.Timeout = timeout
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(t *HTTPTransport) {
		t.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying http.Client, for callers that need
// their own TLS or proxy configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) {
		t.httpClient = client
	}
}

// Get performs a GET against url.
func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodGet, url, nil)
}

// Post performs a POST against url with a JSON body.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte) (*Response, error) {
	return t.do(ctx, http.MethodPost, url, body)
}

// Delete performs a DELETE against url.
func (t *HTTPTransport) Delete(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodDelete, url, nil)
}

func (t *HTTPTransport) do(ctx context.Context, method, url string, body []byte) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	httpResp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	// Buffer the body so an empty payload maps to a nil stream and callers
	// never hold the connection open.
	respBody, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, err
	}

	resp := &Response{StatusCode: httpResp.StatusCode}
	if len(respBody) > 0 {
		resp.Body = io.NopCloser(bytes.NewReader(respBody))
	}

	return resp, nil
}
