// Package fuse decodes a console fuse bank into a types.FuseSet.
//
// A fuse bank is sixteen 64-bit write-once lines. Every decoded field is a
// fixed bit range (or a run of unary nibbles) within specific lines, so the
// package keeps that layout as data in Layout and runs a single extraction
// routine over it. Nothing is checksummed: the lines are immutable on real
// hardware and the decoder trusts them as given.
//
// Lines can come from a fuse dump in text form (ParseText), from a binary
// 128-byte bank (ParseBinary), or from the virtual fuses stored in a flash
// image (see nand.Reader.VirtualFuses).
package fuse
