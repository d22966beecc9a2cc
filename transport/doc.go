// Package transport performs the HTTP calls for the KairosDB client.
//
// The Transport interface is the seam between the client core and the
// network: it yields a status code plus an optional body stream and nothing
// else. HTTPTransport is the production implementation; tests and callers
// with exotic transport needs can substitute their own.
//
//	t := transport.NewHTTPTransport(
//	    transport.WithTimeout(10*time.Second),
//	    transport.WithHeader("Authorization", "Bearer token"),
//	)
//
// Retries, backoff, and timeouts live here (or in the injected http.Client),
// never in the client core.
package transport
