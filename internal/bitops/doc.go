// Package bitops contains the byte- and bit-level primitives shared by every
// decoder: byte-order swaps, population counts, zero-run and byte-occurrence
// scans, buffer comparison, and bounds-checked slicing.
//
// Everything here is pure. Range arguments follow one convention: a scan
// covers [off, off+n), and n <= 0 means "to the end of the buffer". A range
// reaching past the buffer is an error, never silently clamped.
package bitops
