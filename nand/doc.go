// Package nand presents a console flash dump as a sequence of fixed-size
// blocks, hiding whether the dump carries per-page spare (ECC) data.
//
// A Reader borrows an io.ReaderAt for the length of a session. Callers must
// keep the source stable (no concurrent writers) until Close. Everything a
// Reader returns is a fresh copy; nothing retains the source buffer.
//
// Three image geometries are recognized:
//
//	Raw         512-byte pages, no spare data
//	SmallBlock  512+16 byte pages, 32 pages per block, marker at spare[5]
//	BigBlock    512+16 byte pages, 256 pages per block, marker inline at spare[0]
//
// Bad-block scanning needs spare data, so it is unsupported on Raw images.
package nand
