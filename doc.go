// Package lvlmath is your in-memory playground for elementary numerical
// analysis — hand-rolled complex arithmetic, fast exponentiation, and the
// classical scalar root-finding iterations, one tiny package per idea.
//
// 🚀 What is lvlmath?
//
//	A compact, beginner-friendly library that brings together:
//		• Complex numbers: add, subtract, multiply, divide, conjugate, modulus, argument
//		• Fast powers: exponentiation by squaring, generic over any multiplicative type
//		• Square roots: Heron's (Babylonian) iteration
//		• Root finding: Steffensen's derivative-free method & the bisection bracket
//		• Machine limits: unsigned integer width probed one doubling at a time
//
// ✨ Why choose lvlmath?
//
//   - Textbook clarity – every routine is a direct transcription of the formula
//   - Rock-solid edge cases – strict sentinel errors, no silent NaNs
//   - Pure Go – no cgo, no reflection, no hidden state
//   - Inspectable – every solver can hand back its full iterate trace
//
// Under the hood, everything is organized under small subpackages:
//
//	cplx/       — transparent Complex value type with named arithmetic methods
//	power/      — Pow via squaring, shared by real and complex bases
//	solver/     — the bounded iterate-until-tolerance loop behind every method
//	heron/      — √x as a fixed point of a ↦ (a + x/a)/2
//	steffensen/ —
//	bisection/  — the bracketing method that cannot diverge
//	intbits/    — overflow-probed word size & maximum unsigned value
//
// Quick taste:
//
//	root, _, err := heron.Sqrt(2)                        // 1.4142135623730951
//	z, err := power.Pow(cplx.Complex{Re: 1, Im: 1}, -30) // (1+1i)⁻³⁰
//
// Dive into each package's doc.go for exact contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
