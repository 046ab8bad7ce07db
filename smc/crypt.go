package smc

import "github.com/joshuapare/nandkit/internal/format"

// Decrypt returns the plain firmware for an obfuscated blob. The input is
// left untouched.
func Decrypt(blob []byte) []byte {
	out := make([]byte, len(blob))
	key := format.SMCKey
	for i, c := range blob {
		out[i] = c ^ key[i&3]
		step(&key, i, c)
	}
	return out
}

// Encrypt is the inverse of Decrypt.
func Encrypt(plain []byte) []byte {
	out := make([]byte, len(plain))
	key := format.SMCKey
	for i, c := range plain {
		out[i] = c ^ key[i&3]
		step(&key, i, out[i])
	}
	return out
}

// step advances the key using the ciphertext byte at position i.
func step(key *[4]byte, i int, cipher byte) {
	mod := int(cipher) * 0xFB
	key[(i+1)&3] += byte(mod)
	key[(i+2)&3] += byte(mod >> 8)
}

// LooksDecrypted reports whether blob starts with the stock reset vector,
// which is how a plain image is told apart from a stored one.
func LooksDecrypted(blob []byte) bool {
	return len(blob) > format.SMCResetVectorOffset &&
		blob[format.SMCResetVectorOffset] == format.SMCResetVectorLJMP
}
