package schema

import (
	"errors"
	"testing"
)

func TestValidatePush(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid single metric",
			doc:  `[{"name": "cpu.idle", "tags": {"host": "web01"}, "datapoints": [[1357019400000, 98.2]]}]`,
		},
		{
			name: "valid with ttl and string value",
			doc:  `[{"name": "m", "ttl": 300, "datapoints": [[1, "2.5"]]}]`,
		},
		{
			name:    "empty array",
			doc:     `[]`,
			wantErr: true,
		},
		{
			name:    "missing name",
			doc:     `[{"datapoints": [[1, 2]]}]`,
			wantErr: true,
		},
		{
			name:    "empty metric name",
			doc:     `[{"name": "", "datapoints": [[1, 2]]}]`,
			wantErr: true,
		},
		{
			name:    "no datapoints",
			doc:     `[{"name": "m", "datapoints": []}]`,
			wantErr: true,
		},
		{
			name:    "datapoint not a pair",
			doc:     `[{"name": "m", "datapoints": [[1]]}]`,
			wantErr: true,
		},
		{
			name:    "non-string tag value",
			doc:     `[{"name": "m", "tags": {"host": 1}, "datapoints": [[1, 2]]}]`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			doc:     `[{"name": "m", "datapoints": [[1, 2]], "bogus": true}]`,
			wantErr: true,
		},
		{
			name:    "not an array",
			doc:     `{"name": "m"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePush([]byte(tt.doc))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDocument) {
					t.Errorf("Expected ErrInvalidDocument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected valid document, got %v", err)
			}
		})
	}
}

func TestValidatePush_NotJSON(t *testing.T) {
	err := ValidatePush([]byte(`not json`))
	if err == nil {
		t.Fatal("Expected error for non-JSON input")
	}
	if errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Expected a plain parse error, got %v", err)
	}
}
