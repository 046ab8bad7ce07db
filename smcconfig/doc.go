// Package smcconfig decodes the SMC configuration record kept in flash:
// regions, fan overrides, temperature readings, the console MAC address and
// the last reset cause.
//
// The record is 0x100 bytes, big-endian, and protected by a 16-bit checksum
// over everything after the checksum field. A bad checksum is always
// reported; enumerated fields that hold an unmapped value decode with the
// name "Unknown" instead of failing the record.
package smcconfig
