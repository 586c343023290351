package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(KindDownload, cause, "fetching %s", "http://example.com/a.jpg")

	if got, want := err.Error(), "fetching http://example.com/a.jpg: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if KindOf(err) != KindDownload {
		t.Errorf("KindOf() = %q, want %q", KindOf(err), KindDownload)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindDecode, nil, "decoding"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"lookup", New(KindLookup, "object 1"), true},
		{"wrapped lookup", fmt.Errorf("attempt 3: %w", New(KindLookup, "object 1")), true},
		{"search", New(KindSearch, "search failed"), false},
		{"download", New(KindDownload, "download failed"), false},
		{"plain", context.Canceled, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("run: %w", New(KindExhausted, "no image after %d attempts", 20))

	if !errors.Is(err, ErrExhausted) {
		t.Error("errors.Is(err, ErrExhausted) = false, want true")
	}
	if errors.Is(err, ErrLookup) {
		t.Error("errors.Is(err, ErrLookup) = true, want false")
	}
	if KindOf(context.Canceled) != "" {
		t.Errorf("KindOf(unclassified) = %q, want empty", KindOf(context.Canceled))
	}
}
