package intbits_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/lvlmath/intbits"
)

func TestUintBits_MatchesPlatform(t *testing.T) {
	if got := intbits.UintBits(); got != bits.UintSize {
		t.Fatalf("UintBits() = %d; want %d", got, bits.UintSize)
	}
}

func TestMaxUint_IsAllOnes(t *testing.T) {
	if got := intbits.MaxUint(); got != ^uint(0) {
		t.Fatalf("MaxUint() = %d; want %d", got, ^uint(0))
	}
}

func TestMaxUint_WrapsToZero(t *testing.T) {
	if wrapped := intbits.MaxUint() + 1; wrapped != 0 {
		t.Fatalf("MaxUint() + 1 = %d; want 0", wrapped)
	}
}
