package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidImage     ErrKind = iota + 1 // image size/geometry/signature not recognized
	ErrKindOutOfRange                          // offset or block beyond the source
	ErrKindUnsupported                         // operation not defined for this image or variant
	ErrKindChecksumMismatch                    // structural validation failed
	ErrKindDataNotFound                        // optional artifact legitimately absent
	ErrKindNotApplicable                       // operation meaningless for this variant
)

var kindNames = map[ErrKind]string{
	ErrKindInvalidImage:     "InvalidImage",
	ErrKindOutOfRange:       "OutOfRange",
	ErrKindUnsupported:      "Unsupported",
	ErrKindChecksumMismatch: "ChecksumMismatch",
	ErrKindDataNotFound:     "DataNotFound",
	ErrKindNotApplicable:    "NotApplicable",
}

func (k ErrKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// MarshalText renders the kind by name so reports stay readable as JSON.
func (k ErrKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfRange)
// holds for every out-of-range failure regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidImage indicates the source size or geometry is not recognized.
	ErrInvalidImage = &Error{Kind: ErrKindInvalidImage, Msg: "invalid image"}
	// ErrOutOfRange indicates a requested offset or block lies beyond the source.
	ErrOutOfRange = &Error{Kind: ErrKindOutOfRange, Msg: "out of range"}
	// ErrUnsupported indicates the operation is not defined for this image type.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "not supported for this image type"}
	// ErrChecksumMismatch indicates a stored checksum did not match the computed one.
	ErrChecksumMismatch = &Error{Kind: ErrKindChecksumMismatch, Msg: "checksum mismatch"}
	// ErrDataNotFound indicates an optional artifact is not present in the image.
	ErrDataNotFound = &Error{Kind: ErrKindDataNotFound, Msg: "data not found"}
	// ErrNotApplicable indicates the operation has no meaning for the decoded variant.
	ErrNotApplicable = &Error{Kind: ErrKindNotApplicable, Msg: "not applicable"}
)

// Errorf builds a typed error of the given kind wrapping an optional cause.
func Errorf(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or 0 when err
// carries no typed error.
func KindOf(err error) ErrKind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}
