// Package mmfile provides platform-specific helpers for mapping dump files
// into memory.
package mmfile
