// Package intbits measures the machine's unsigned word empirically: no
// build tags, no constants, just arithmetic that overflows on schedule.
//
// UintBits doubles a single set bit until unsigned wrap-around clears it,
// counting the doublings; MaxUint assembles the all-ones value as the sum
// 2⁰ + 2¹ + … + 2^(UintBits()−1). Both agree with math/bits.UintSize and
// ^uint(0); the point is deriving them from overflow behavior alone.
package intbits
