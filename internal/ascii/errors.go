package ascii

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can branch on the cause
// instead of string-matching messages.
type Kind int

const (
	// KindNoValidImage means the source path does not reference a readable
	// image. Callers should treat this as a normal condition requiring a
	// user prompt, not a crash.
	KindNoValidImage Kind = iota + 1

	// KindInvalidParameter means a parameter was out of range. Nothing was
	// converted; the caller's previous value should be restored.
	KindInvalidParameter

	// KindDecode means the underlying codec failed to decode or resample
	// the image.
	KindDecode
)

// String returns a short tag for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNoValidImage:
		return "no valid image"
	case KindInvalidParameter:
		return "invalid parameter"
	case KindDecode:
		return "decode error"
	default:
		return "unknown"
	}
}

// Error is the tagged failure type for the sampling pipeline.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsNoValidImage reports whether err is a pipeline error tagged
// KindNoValidImage.
func IsNoValidImage(err error) bool { return hasKind(err, KindNoValidImage) }

// IsInvalidParameter reports whether err is a pipeline error tagged
// KindInvalidParameter.
func IsInvalidParameter(err error) bool { return hasKind(err, KindInvalidParameter) }

// IsDecode reports whether err is a pipeline error tagged KindDecode.
func IsDecode(err error) bool { return hasKind(err, KindDecode) }

func hasKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func errNoValidImage(path string, cause error) *Error {
	return &Error{Kind: KindNoValidImage, Message: fmt.Sprintf("source %q is not a readable image", path), Cause: cause}
}

func errInvalidParam(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidParameter, Message: fmt.Sprintf(format, args...)}
}

func errDecode(path string, cause error) *Error {
	return &Error{Kind: KindDecode, Message: fmt.Sprintf("failed to process %q", path), Cause: cause}
}
