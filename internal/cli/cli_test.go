package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wesleyorama2/go-kairosdb/builder"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return buf.String(), err
}

func TestParseRelative(t *testing.T) {
	tests := []struct {
		in      string
		value   int
		unit    builder.TimeUnit
		wantErr bool
	}{
		{in: "30s", value: 30, unit: builder.Seconds},
		{in: "5m", value: 5, unit: builder.Minutes},
		{in: "2h", value: 2, unit: builder.Hours},
		{in: "7d", value: 7, unit: builder.Days},
		{in: "1w", value: 1, unit: builder.Weeks},
		{in: "3mo", value: 3, unit: builder.Months},
		{in: "1y", value: 1, unit: builder.Years},
		{in: "250ms", value: 250, unit: builder.Milliseconds},
		{in: "h", wantErr: true},
		{in: "-1h", wantErr: true},
		{in: "2fortnights", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			value, unit, err := parseRelative(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Error parsing %q: %v", tt.in, err)
			}
			if value != tt.value || unit != tt.unit {
				t.Errorf("Expected (%d, %s), got (%d, %s)", tt.value, tt.unit, value, unit)
			}
		})
	}
}

func TestMetricNamesCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/metricnames" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"results": ["cpu.idle", "mem.free"]}`))
	}))
	defer server.Close()

	out, err := execute(t, "metricnames", "--url", server.URL)
	if err != nil {
		t.Fatalf("Error running command: %v", err)
	}
	if !strings.Contains(out, "cpu.idle") || !strings.Contains(out, "mem.free") {
		t.Errorf("Expected metric names in output, got:\n%s", out)
	}
}

func TestQueryCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datapoints/query" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		body := new(bytes.Buffer)
		body.ReadFrom(r.Body)
		if !strings.Contains(body.String(), `"start_relative":{"value":2,"unit":"hours"}`) {
			t.Errorf("Unexpected query body: %s", body.String())
		}
		w.Write([]byte(`{"queries":[{"results":[{"name":"cpu.idle","tags":{"host":["web01"]},"values":[[1357019400000,98.2]]}]}]}`))
	}))
	defer server.Close()

	out, err := execute(t, "query",
		"--url", server.URL,
		"--metric", "cpu.idle",
		"--start", "2h",
		"--tag", "host=web01",
	)
	if err != nil {
		t.Fatalf("Error running command: %v", err)
	}
	if !strings.Contains(out, "cpu.idle") || !strings.Contains(out, "1357019400000") {
		t.Errorf("Expected query output, got:\n%s", out)
	}
}

func TestPushCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datapoints" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "points.json")
	doc := `[{"name": "cpu.idle", "tags": {"host": "web01"}, "datapoints": [[1357019400000, 98.2]]}]`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("Error writing temp file: %v", err)
	}

	out, err := execute(t, "push", "--url", server.URL, "--file", path)
	if err != nil {
		t.Fatalf("Error running command: %v", err)
	}
	if !strings.Contains(out, "204") {
		t.Errorf("Expected status in output, got:\n%s", out)
	}
}

func TestPushCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	if err := os.WriteFile(path, []byte(`[{"datapoints": [[1, 2]]}]`), 0o600); err != nil {
		t.Fatalf("Error writing temp file: %v", err)
	}

	if _, err := execute(t, "push", "--url", "http://kairos.local:8080", "--file", path); err == nil {
		t.Error("Expected schema validation error")
	}
}

func TestDeleteMetricCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" || r.URL.Path != "/api/v1/metric/cpu.idle" {
			t.Errorf("Unexpected call: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	out, err := execute(t, "delete", "metric", "cpu.idle", "--url", server.URL)
	if err != nil {
		t.Fatalf("Error running command: %v", err)
	}
	if !strings.Contains(out, "204") {
		t.Errorf("Expected status in output, got:\n%s", out)
	}
}

func TestCommand_RequiresURL(t *testing.T) {
	if _, err := execute(t, "metricnames", "--url", ""); err == nil {
		t.Error("Expected error when no URL is configured")
	}
}

func TestCommand_ConfigProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("Expected profile header, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	doc := "baseUrl: " + server.URL + "\nheaders:\n  Authorization: Bearer token\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("Error writing temp config: %v", err)
	}

	if _, err := execute(t, "tagnames", "--url", "", "--config", path); err != nil {
		t.Fatalf("Error running command: %v", err)
	}
}
