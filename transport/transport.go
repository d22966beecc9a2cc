package transport

import (
	"context"
	"io"
)

// Response is what a Transport hands back: the HTTP status code and the
// response body, or a nil Body when the server sent nothing.
type Response struct {
	StatusCode int
	Body       io.ReadCloser
}

// Transport performs the actual network calls for the client. Implementations
// own connection handling, TLS, and any socket-level retry policy; the client
// core only consumes the status code and body stream.
type Transport interface {
	// Get performs a GET against url.
	Get(ctx context.Context, url string) (*Response, error)

	// Post performs a POST against url with a JSON body.
	Post(ctx context.Context, url string, body []byte) (*Response, error)

	// Delete performs a DELETE against url.
	Delete(ctx context.Context, url string) (*Response, error)
}
