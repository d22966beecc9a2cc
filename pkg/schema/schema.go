// Package schema validates KairosDB payload documents against JSON Schemas
// before they are sent to the server, so obvious shape mistakes are caught
// locally with a precise message instead of a server-side 400.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidDocument is returned when a document parses as JSON but does not
// match the expected payload shape.
var ErrInvalidDocument = errors.New("document does not match schema")

// pushSchema describes the /api/v1/datapoints payload: an array of metric
// objects with [timestamp, value] data point pairs.
const pushSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["name", "datapoints"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"tags": {
				"type": "object",
				"additionalProperties": {"type": "string", "minLength": 1}
			},
			"ttl": {"type": "integer", "minimum": 0},
			"datapoints": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "array",
					"prefixItems": [
						{"type": "integer"},
						{"type": ["number", "string", "boolean"]}
					],
					"minItems": 2,
					"maxItems": 2
				}
			}
		},
		"additionalProperties": false
	}
}`

var (
	pushOnce     sync.Once
	pushCompiled *jsonschema.Schema
	pushErr      error
)

func compiledPushSchema() (*jsonschema.Schema, error) {
	pushOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("push.json", strings.NewReader(pushSchema)); err != nil {
			pushErr = err
			return
		}
		pushCompiled, pushErr = compiler.Compile("push.json")
	})
	return pushCompiled, pushErr
}

// ValidatePush checks a push payload document. It returns nil when the
// document is a valid metric array, an error wrapping ErrInvalidDocument
// when the shape is wrong, and a plain error when the document is not JSON
// at all.
func ValidatePush(doc []byte) error {
	compiled, err := compiledPushSchema()
	if err != nil {
		return fmt.Errorf("compiling push schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", ErrInvalidDocument, flatten(ve))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// flatten collapses a validation error tree into one line per leaf cause.
func flatten(ve *jsonschema.ValidationError) string {
	if len(ve.Causes) == 0 {
		return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
	}

	var parts []string
	for _, cause := range ve.Causes {
		parts = append(parts, flatten(cause))
	}
	return strings.Join(parts, "; ")
}
