package intbits

// UintBits reports the width of uint in bits, measured by doubling a one
// bit until unsigned arithmetic wraps it to zero.
func UintBits() int {
	bits := 0
	for probe := uint(1); probe != 0; probe <<= 1 {
		bits++
	}

	return bits
}

// MaxUint returns the largest value a uint can hold, assembled as the sum
// of all powers of two below the word width: the all-ones bit pattern.
func MaxUint() uint {
	var sum uint
	for i := 0; i < UintBits(); i++ {
		sum += uint(1) << i
	}

	return sum
}
