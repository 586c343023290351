package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, DefaultUserAgent)
		}
		fmt.Fprint(w, `{"total":2,"objectIDs":[1,2]}`)
	}))
	defer srv.Close()

	var got struct {
		Total     int   `json:"total"`
		ObjectIDs []int `json:"objectIDs"`
	}
	client := NewClient(5*time.Second, "")
	if err := client.GetJSON(context.Background(), srv.URL, &got); err != nil {
		t.Fatalf("GetJSON() error = %v", err)
	}
	if got.Total != 2 || len(got.ObjectIDs) != 2 {
		t.Errorf("GetJSON() = %+v, want total 2 with 2 IDs", got)
	}
}

func TestClient_GetJSON_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total":`)
	}))
	defer srv.Close()

	var v map[string]any
	if err := NewClient(0, "").GetJSON(context.Background(), srv.URL, &v); err == nil {
		t.Error("expected decode error but got none")
	}
}

func TestClient_StatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"forbidden", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := NewClient(0, "test-agent").Get(context.Background(), srv.URL)

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("Get() error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
		})
	}
}

func TestClient_DownloadBytes_Progress(t *testing.T) {
	payload := make([]byte, 64*1024)
	for i := range payload {
		payload[i] = byte(i)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprint(len(payload)))
		w.Write(payload)
	}))
	defer srv.Close()

	var lastWritten, lastTotal int64
	data, err := NewClient(0, "").DownloadBytes(context.Background(), srv.URL, func(written, total int64) {
		lastWritten, lastTotal = written, total
	})
	if err != nil {
		t.Fatalf("DownloadBytes() error = %v", err)
	}
	if len(data) != len(payload) {
		t.Errorf("len(data) = %d, want %d", len(data), len(payload))
	}
	if lastWritten != int64(len(payload)) || lastTotal != int64(len(payload)) {
		t.Errorf("progress = %d/%d, want %d/%d", lastWritten, lastTotal, len(payload), len(payload))
	}
}

func TestPreallocSize(t *testing.T) {
	tests := []struct {
		name          string
		contentLength int64
		want          int
	}{
		{"unknown", -1, 0},
		{"empty", 0, 0},
		{"small", 4096, 4096},
		{"at cap", maxPrealloc, maxPrealloc},
		{"over cap", 1 << 40, maxPrealloc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preallocSize(tt.contentLength); got != tt.want {
				t.Errorf("preallocSize(%d) = %d, want %d", tt.contentLength, got, tt.want)
			}
		})
	}
}

func TestClient_DownloadBytes_ShortBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1099511627776")
		w.Write([]byte("truncated"))
	}))
	defer srv.Close()

	client := NewClient(5*time.Second, "")
	if _, err := client.DownloadBytes(context.Background(), srv.URL, nil); err == nil {
		t.Error("expected error for body shorter than Content-Length")
	}
}

func TestClient_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewClient(0, "").Get(ctx, srv.URL); !errors.Is(err, context.Canceled) {
		t.Errorf("Get() error = %v, want context.Canceled", err)
	}
}
