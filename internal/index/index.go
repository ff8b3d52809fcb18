// File: internal/index/index.go
// Package index implements modulo-capacity position arithmetic.
//
// The buffer's head/tail bookkeeping and the iterator's cursor both step
// through these two functions so their notion of "next slot" never diverges.

package index

// Inc advances a physical position by one slot, wrapping at n.
func Inc(i, n int) int {
	return (i + 1) % n
}

// Dec retreats a physical position by one slot, wrapping at n.
func Dec(i, n int) int {
	return (i + n - 1) % n
}
