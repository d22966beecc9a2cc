package config

import (
	"fmt"
	"net/url"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the profile for problems.
func Validate(profile *Profile) []ValidationError {
	var errors []ValidationError

	if profile.BaseURL == "" {
		errors = append(errors, ValidationError{
			Path:    "baseUrl",
			Message: "baseUrl is required",
		})
	} else {
		u, err := url.Parse(profile.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Path:    "baseUrl",
				Message: fmt.Sprintf("invalid URL: %s", profile.BaseURL),
			})
		}
	}

	if profile.Timeout != "" {
		if _, err := time.ParseDuration(profile.Timeout); err != nil {
			errors = append(errors, ValidationError{
				Path:    "timeout",
				Message: fmt.Sprintf("invalid duration: %s", profile.Timeout),
			})
		}
	}

	for key := range profile.Headers {
		if key == "" {
			errors = append(errors, ValidationError{
				Path:    "headers",
				Message: "header name cannot be empty",
			})
		}
	}

	return errors
}
