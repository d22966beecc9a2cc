package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// DecodeNames decodes a name-list payload: a JSON object whose "results"
// field holds an array of strings. Unknown top-level fields are ignored for
// forward compatibility, and a missing "results" field decodes as an empty
// list. Anything that is not an object, or a "results" field that is not a
// string array, fails with ErrMalformedPayload.
func DecodeNames(r io.Reader) ([]string, error) {
	return decodeStringField(r, "results")
}

// DecodeErrors decodes an error payload: a JSON object whose "errors" field
// holds an array of strings. A missing "errors" field decodes as an empty
// list.
func DecodeErrors(r io.Reader) ([]string, error) {
	return decodeStringField(r, "errors")
}

func decodeStringField(r io.Reader, field string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedPayload)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedPayload)
	}

	arr := root.Get(field)
	if !arr.Exists() {
		return []string{}, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("%w: %q is not an array", ErrMalformedPayload, field)
	}

	out := []string{}
	for _, elem := range arr.Array() {
		if elem.Type != gjson.String {
			return nil, fmt.Errorf("%w: %q holds a non-string element", ErrMalformedPayload, field)
		}
		out = append(out, elem.String())
	}
	return out, nil
}

// Wire shapes for the query endpoint. Group values stay raw until the
// registry picks their decoder, and all numbers go through json.Number so
// integer magnitudes are not collapsed to float64.
type wireQueryResponse struct {
	Queries []wireQuery `json:"queries"`
}

type wireQuery struct {
	SampleSize int64        `json:"sample_size"`
	Results    []wireResult `json:"results"`
}

type wireResult struct {
	Name    string              `json:"name"`
	Tags    map[string][]string `json:"tags"`
	GroupBy []wireGroup         `json:"group_by"`
	Values  []DataPoint         `json:"values"`
}

type wireGroup struct {
	Name   string            `json:"name"`
	Values []json.RawMessage `json:"values"`
}

// DecodeQuery decodes a full query-result payload. Each group_by entry names
// a group type; its values array is decoded through the ValueDecoder the
// registry holds for that type. An unregistered type fails the whole decode
// with ErrUnknownGroupType so callers never see silently dropped groups.
//
// The registry is only read, never mutated.
func DecodeQuery(r io.Reader, reg *TypeRegistry) (*QueryResponse, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var wire wireQueryResponse
	if err := dec.Decode(&wire); err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	resp := &QueryResponse{}
	for _, q := range wire.Queries {
		for _, res := range q.Results {
			qr := QueryResult{
				Name:   res.Name,
				Tags:   res.Tags,
				Values: res.Values,
			}
			for _, g := range res.GroupBy {
				vd, ok := reg.Resolve(g.Name)
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrUnknownGroupType, g.Name)
				}
				gr := GroupResult{Name: g.Name}
				for _, raw := range g.Values {
					v, err := vd(raw)
					if err != nil {
						return nil, fmt.Errorf("group %q: %w", g.Name, err)
					}
					gr.Values = append(gr.Values, v)
				}
				qr.GroupResults = append(qr.GroupResults, gr)
			}
			resp.Results = append(resp.Results, qr)
		}
	}
	return resp, nil
}
