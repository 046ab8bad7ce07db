// Package format houses the fixed binary layouts of the flash dump, the SMC
// firmware and its configuration record: offsets, sizes, signatures and
// magic values. Offsets and widths are part of the on-media format and must
// match it bit for bit; nothing here does I/O.
package format
