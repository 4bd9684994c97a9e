package gslice

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Element is the set of element types a Slice can hold: every fixed-width and
// machine-sized integer (including uintptr as the size type) and strings.
type Element interface {
	constraints.Integer | ~string
}

// EqualFunc reports whether two elements are equal. It must be reflexive and
// free of side effects.
type EqualFunc[T any] func(a, b T) bool

// CompareFunc is a three-way comparator: negative when a < b, zero when equal,
// positive when a > b.
type CompareFunc[T any] func(a, b T) int

// Equal is the native equality of T.
func Equal[T Element](a, b T) bool { return a == b }

// Ascending orders elements from smallest to largest.
func Ascending[T Element](a, b T) int { return cmp.Compare(a, b) }

// Descending orders elements from largest to smallest.
func Descending[T Element](a, b T) int { return cmp.Compare(b, a) }

func orEqual[T Element](eq EqualFunc[T]) EqualFunc[T] {
	if eq == nil {
		return Equal[T]
	}
	return eq
}
