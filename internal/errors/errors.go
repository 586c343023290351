// Package errors defines the failure taxonomy of art-exposure.
//
// Every failure that leaves a component is an *Error carrying a Kind. The
// kind decides how the caller reacts:
//   - KindLookup is the only retryable kind; the selector absorbs it and
//     moves on to the next attempt
//   - KindWallpaper is reported but does not fail the run
//   - everything else is fatal
//
// # Usage
//
//	err := errors.Wrap(errors.KindDownload, cause, "fetching %s", url)
//	if errors.IsRetryable(err) {
//	    // try another candidate
//	}
//	if errors.KindOf(err) == errors.KindExhausted {
//	    // no usable image in the attempt budget
//	}
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind string

const (
	KindSearch              Kind = "SEARCH"
	KindLookup              Kind = "LOOKUP"
	KindExhausted           Kind = "EXHAUSTED"
	KindDownload            Kind = "DOWNLOAD"
	KindDecode              Kind = "DECODE"
	KindFont                Kind = "FONT"
	KindPersistence         Kind = "PERSISTENCE"
	KindWallpaper           Kind = "WALLPAPER"
	KindUnsupportedPlatform Kind = "UNSUPPORTED_PLATFORM"
	KindDisplay             Kind = "DISPLAY"
	KindConfig              Kind = "CONFIG"
)

// Error is a classified failure with an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: KindDecode}) matches any decode failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Cause == nil
}

// Retryable reports whether the failure may be recovered by trying a
// different candidate.
func (e *Error) Retryable() bool { return e.Kind == KindLookup }

// New creates an Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause. A nil cause yields nil.
func Wrap(kind Kind, cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of the outermost *Error in err's chain, or "" when
// err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable reports whether err is classified as retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}

// Sentinels for errors.Is checks.
var (
	ErrLookup              = &Error{Kind: KindLookup}
	ErrExhausted           = &Error{Kind: KindExhausted}
	ErrUnsupportedPlatform = &Error{Kind: KindUnsupportedPlatform}
)
