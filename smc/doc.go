// Package smc decodes system management controller firmware: the version
// bytes, the board revision they imply, and the variant category of the
// image (stock, glitch-patched or one of the JTAG flavours).
//
// Firmware is stored obfuscated in flash. Decrypt undoes the keyless stream
// transform; every decoder here expects the decrypted form.
package smc
