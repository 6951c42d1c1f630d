// Package vic emulates the 6569/6567 video chip at single-cycle granularity.
//
// The chip is driven by the Tick() function, once per system clock cycle.
// Each tick performs the memory accesses, register updates and pixel output
// of one cycle of the per-rasterline schedule described in the usual 6569
// timing literature. Software of the era reprograms the chip mid-line and
// relies on the exact timing of the BA line and of the interrupt sources, so
// there is no line-based fast path: every observable effect is produced at
// the cycle in which the real chip produces it.
//
// The package deliberately knows nothing about the CPU or the wider memory
// system. It consumes a Bus (a 14-bit read, a colour RAM read and the bank
// select bits held by the second CIA) and drives a CPU (the BA stall line
// and the interrupt line).
package vic
