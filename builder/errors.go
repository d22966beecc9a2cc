package builder

import "errors"

// ErrInvalid is returned by Build when a builder is missing required fields
// or holds values the server would reject. It surfaces before any network
// call is made.
var ErrInvalid = errors.New("invalid builder state")
