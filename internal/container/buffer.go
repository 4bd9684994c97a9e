// Package container implements the buffer management shared by the slice types.
//
// A buffer is a plain Go slice whose len is the logical length and whose cap is
// the logical capacity. Capacity only ever changes through this package, so it is
// always exactly what the growth policy asked for rather than whatever the runtime's
// append would pick.
package container

import (
	"fmt"
	"math"
)

// NextCapacity returns the capacity a buffer must grow to so that it can hold need
// elements, doubling from capacity. Growth from zero starts at one.
func NextCapacity(capacity, need int) int {
	if need <= capacity {
		return capacity
	}
	if capacity <= 0 {
		capacity = 1
	}
	for capacity < need {
		if capacity > math.MaxInt/2 {
			return need
		}
		capacity *= 2
	}
	return capacity
}

// Resize relocates buf into storage of exactly the given capacity, keeping its
// length. Elements past the new capacity are dropped. A negative capacity
// panics, the same way make does.
func Resize[T any](buf []T, capacity int) []T {
	if capacity < 0 {
		panic(fmt.Sprintf("container: resize to negative capacity %d", capacity))
	}
	n := min(len(buf), capacity)
	grown := make([]T, n, capacity)
	copy(grown, buf[:n])
	return grown
}

// Reserve makes room for extra more elements past len(buf), doubling the
// capacity as often as needed. It reports whether the buffer was relocated.
func Reserve[T any](buf []T, extra int) ([]T, bool) {
	need := len(buf) + extra
	if need <= cap(buf) {
		return buf, false
	}
	return Resize(buf, NextCapacity(cap(buf), need)), true
}

// Clear zeroes buf[from:to] so the collector can reclaim what it referenced.
func Clear[T any](buf []T, from, to int) {
	clear(buf[from:to])
}
