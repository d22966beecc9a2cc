package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
)

// Built-in group types seeded into every registry.
const (
	GroupTypeNumber = "number"
	GroupTypeText   = "text"
)

// ValueDecoder turns one raw group_by value into its semantic Go value.
// The wire format identifies group values only by a string tag, so the
// registry maps each tag to the decode function for that tag's payload.
type ValueDecoder func(raw json.RawMessage) (interface{}, error)

// TypeRegistry maps group-type tags to value decoders.
//
// A registry is seeded with the "number" and "text" built-ins. Resolve may be
// called from any number of goroutines; Register is atomic, so a concurrent
// Resolve never observes a partially applied registration. Registering while
// queries for the same tag are being decoded still needs ordering by the
// caller: register custom types before issuing queries that use them.
type TypeRegistry struct {
	mu       sync.RWMutex
	decoders map[string]ValueDecoder
}

// NewTypeRegistry creates a registry holding the built-in group types.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		decoders: map[string]ValueDecoder{
			GroupTypeNumber: decodeNumberValue,
			GroupTypeText:   decodeTextValue,
		},
	}
}

// Register adds a decoder for a new group-type tag. It fails with
// ErrDuplicateTag if the tag is already present; existing mappings are never
// overridden.
func (r *TypeRegistry) Register(tag string, dec ValueDecoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.decoders[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
	}
	r.decoders[tag] = dec
	return nil
}

// Resolve returns the decoder registered for tag. The second return value
// reports whether the tag is registered; absence is not an error here, the
// decoder escalates it to ErrUnknownGroupType when a payload references the
// tag.
func (r *TypeRegistry) Resolve(tag string) (ValueDecoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dec, ok := r.decoders[tag]
	return dec, ok
}

// decodeNumberValue decodes a "number" group value into a json.Number,
// which preserves both integer and floating-point magnitudes exactly as the
// server emitted them. KairosDB emits numeric group values as numeral
// strings, so both `1` and `"1"` are accepted.
func decodeNumberValue(raw json.RawMessage) (interface{}, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n := json.Number(s)
		if _, err := n.Int64(); err != nil {
			if _, err := n.Float64(); err != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedPayload, s)
			}
		}
		return n, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return n, nil
}

// decodeTextValue decodes a "text" group value into a plain string.
func decodeTextValue(raw json.RawMessage) (interface{}, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return s, nil
}
