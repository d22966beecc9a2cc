package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPTransport_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected method POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type: application/json, got %s", r.Header.Get("Content-Type"))
		}
		if r.Header.Get("X-Custom") != "yes" {
			t.Errorf("Expected X-Custom: yes, got %s", r.Header.Get("X-Custom"))
		}

		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"a":1}` {
			t.Errorf("Unexpected request body: %s", body)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(
		WithTimeout(5*time.Second),
		WithHeader("X-Custom", "yes"),
	)

	resp, err := tr.Post(context.Background(), server.URL, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if resp.Body == nil {
		t.Fatal("Expected a body stream")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Error reading body: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestHTTPTransport_EmptyBodyIsNilStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr := NewHTTPTransport()

	resp, err := tr.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected status code %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
	if resp.Body != nil {
		t.Error("Expected nil body for empty payload")
	}
}

func TestHTTPTransport_Delete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr := NewHTTPTransport()

	resp, err := tr.Delete(context.Background(), server.URL+"/api/v1/metric/cpu.idle")
	if err != nil {
		t.Fatalf("Error executing request: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected status code %d, got %d", http.StatusNoContent, resp.StatusCode)
	}
	if gotMethod != "DELETE" {
		t.Errorf("Expected method DELETE, got %s", gotMethod)
	}
	if gotPath != "/api/v1/metric/cpu.idle" {
		t.Errorf("Unexpected path: %s", gotPath)
	}
}

func TestHTTPTransport_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	tr := NewHTTPTransport()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := tr.Get(ctx, server.URL); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
