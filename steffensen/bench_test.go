package steffensen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/steffensen"
)

var benchRoot float64

func BenchmarkRoot_Polynomial(b *testing.B) {
	f := func(x float64) float64 { return 2 - x*x }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, _, err := steffensen.Root(f, 2)
		if err != nil {
			b.Fatalf("Root: %v", err)
		}
		benchRoot = root
	}
}

func BenchmarkRoot_Transcendental(b *testing.B) {
	f := func(x float64) float64 { return math.Cos(x) - x }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, _, err := steffensen.Root(f, 1)
		if err != nil {
			b.Fatalf("Root: %v", err)
		}
		benchRoot = root
	}
}
