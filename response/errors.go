package response

import "errors"

// Sentinel errors returned by the decoder and the type registry. Callers
// should test for them with errors.Is since they are usually wrapped with
// additional context.
var (
	// ErrDuplicateTag is returned when registering a group type that is
	// already present, including the built-in "number" and "text" types.
	ErrDuplicateTag = errors.New("group type already registered")

	// ErrUnknownGroupType is returned when a query response contains a
	// group_by entry whose type has no registered value decoder. The whole
	// decode fails; partial results are never returned.
	ErrUnknownGroupType = errors.New("no value type registered for group type")

	// ErrMalformedPayload is returned when a response body cannot be parsed
	// as the expected JSON shape.
	ErrMalformedPayload = errors.New("malformed response payload")

	// ErrMissingBody is returned when a successful response was expected to
	// carry a body and none was present.
	ErrMissingBody = errors.New("missing response body")
)
