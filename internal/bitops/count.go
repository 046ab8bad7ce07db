package bitops

// CountSetBits returns the population count of n. The loop clears the lowest
// set bit each iteration, so it runs once per set bit.
func CountSetBits(n uint64) uint32 {
	var c uint32
	for ; n > 0; c++ {
		n &= n - 1
	}
	return c
}

// CountSetNibbles counts the 4-bit groups of n that are all ones. Lock-down
// counters are burned one nibble at a time.
func CountSetNibbles(n uint64) int {
	c := 0
	for ; n > 0; n >>= 4 {
		if n&0xF == 0xF {
			c++
		}
	}
	return c
}

// IsZero reports whether every byte in the window [off, off+n) is zero,
// stopping at the first nonzero byte.
func IsZero(b []byte, off, n int) (bool, error) {
	w, err := Range(b, off, n)
	if err != nil {
		return false, err
	}
	for _, v := range w {
		if v != 0x00 {
			return false, nil
		}
	}
	return true, nil
}

// CountByte counts the bytes equal to value in the window [off, off+n).
func CountByte(b []byte, value byte, off, n int) (int, error) {
	w, err := Range(b, off, n)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range w {
		if v == value {
			count++
		}
	}
	return count, nil
}
