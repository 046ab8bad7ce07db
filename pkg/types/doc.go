// Package types defines the value types shared by the decoders and the
// typed errors they return.
//
// Every decoded structure is a plain value: it is built from a borrowed
// byte buffer, holds no reference back to it, and marshals to JSON as is.
// Failures carry an ErrKind so callers can branch with errors.Is against
// the sentinels (ErrInvalidImage, ErrDataNotFound, ...) instead of
// matching text.
//
// This package has no dependencies beyond the standard library.
package types
