package response

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GetResponse holds the outcome of a name-listing call (metric names, tag
// names, tag values). Names is nil when StatusCode is an error status.
type GetResponse struct {
	StatusCode int
	Names      []string
}

// IsSuccess returns true if the response status code is in the 2xx range.
func (r *GetResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Response holds the outcome of a push or delete call. Errors carries the
// server's error messages when it sent any; an empty slice means the server
// reported nothing, which is the normal case for successful calls.
type Response struct {
	StatusCode int
	Errors     []string
}

// IsSuccess returns true if the response status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// QueryResponse holds the decoded outcome of a datapoints query. On an error
// status (>= 400) Results is empty and Errors carries the server's messages;
// otherwise Errors is empty.
type QueryResponse struct {
	StatusCode int
	Results    []QueryResult
	Errors     []string
}

// IsSuccess returns true if the response status code is in the 2xx range.
func (r *QueryResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// QueryResult is one metric's slice of a query response: its name, the tags
// the matched series carried, any group-by groupings, and the raw data
// points.
type QueryResult struct {
	Name         string
	Tags         map[string][]string
	GroupResults []GroupResult
	Values       []DataPoint
}

// GroupResult is one group_by entry: the group-type tag and the decoded
// values. The concrete value types are whatever the registered ValueDecoder
// for the tag produced ("number" yields json.Number, "text" yields string).
type GroupResult struct {
	Name   string
	Values []interface{}
}

// DataPoint is a single [timestamp, value] sample. Timestamp is milliseconds
// since the epoch. Value is a json.Number for numeric samples so precision
// survives the decode.
type DataPoint struct {
	Timestamp int64
	Value     interface{}
}

// UnmarshalJSON decodes the wire pair form, e.g. [1357019400000, 321.5].
func (d *DataPoint) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var pair []interface{}
	if err := dec.Decode(&pair); err != nil {
		return fmt.Errorf("%w: data point: %v", ErrMalformedPayload, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: data point must be a [timestamp, value] pair", ErrMalformedPayload)
	}

	ts, ok := pair[0].(json.Number)
	if !ok {
		return fmt.Errorf("%w: data point timestamp must be numeric", ErrMalformedPayload)
	}
	msec, err := ts.Int64()
	if err != nil {
		return fmt.Errorf("%w: data point timestamp: %v", ErrMalformedPayload, err)
	}

	d.Timestamp = msec
	d.Value = pair[1]
	return nil
}
