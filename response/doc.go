// Package response decodes KairosDB REST payloads into typed results.
//
// The wire format comes in three shapes: name lists (metric names, tag names,
// tag values), full query results, and error payloads. Name lists and error
// payloads are decoded leniently - unknown fields are ignored so new server
// versions do not break old clients. Query results are decoded strictly:
// every group_by entry must name a group type with a registered value
// decoder, and an unknown type fails the whole decode rather than silently
// dropping data.
//
// # Group value typing
//
// A group_by entry carries only a string tag ("number", "text", or a custom
// type); JSON alone cannot say what Go type its values should become. The
// TypeRegistry maps each tag to a ValueDecoder and the decoder dispatches
// through it:
//
//	reg := response.NewTypeRegistry()
//	err := reg.Register("complex", func(raw json.RawMessage) (interface{}, error) {
//	    var c Complex
//	    if err := json.Unmarshal(raw, &c); err != nil {
//	        return nil, err
//	    }
//	    return c, nil
//	})
//
// The "number" built-in produces json.Number values so integer and
// floating-point magnitudes survive the decode without precision loss.
//
// # Thread Safety
//
// TypeRegistry is safe for concurrent use. Decode functions are pure with
// respect to the registry; they only read from it.
package response
