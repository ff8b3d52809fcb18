// Package ring
//
// Fixed-capacity double-ended ring buffer with silent opposite-end eviction.
// Backed by one contiguous slot arena allocated at construction; every
// mutation is O(1) and allocation-free. Bidirectional iterators walk logical
// order across the physical wraparound. Not safe for concurrent mutation;
// callers needing cross-goroutine access must synchronize externally.
// See ring.go, mutate.go, iterator.go for implementation details.
package ring
