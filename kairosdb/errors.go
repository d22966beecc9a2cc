package kairosdb

import "errors"

// ErrInvalidArgument is returned when a required argument is nil or empty.
// It always surfaces before any network call is made.
var ErrInvalidArgument = errors.New("invalid argument")
