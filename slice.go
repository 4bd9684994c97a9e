package gslice

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/gslice/internal/container"
)

// Slice is a growable, indexable sequence of T over a contiguous buffer.
//
// Capacity doubles when an append finds the buffer full, growing from zero to
// one. Any operation that changes capacity may move the elements, so the type
// never hands out references into its storage: reads return copies.
//
// The zero value is an empty Slice with capacity zero and default options,
// ready to use. A nil *Slice reads as empty.
//
// A Slice is not safe for concurrent use. Read-only methods may run
// concurrently with each other, never with a mutating method.
type Slice[T Element] struct {
	items []T
	opts  *options
}

// New creates an empty Slice with room for capacity elements.
// A negative capacity is treated as zero.
func New[T Element](capacity int, opts ...Option) *Slice[T] {
	return newSlice[T](capacity, applyOptions(opts))
}

// Of creates a Slice holding a copy of values, with capacity equal to their
// number.
func Of[T Element](values ...T) *Slice[T] {
	s := New[T](len(values))
	s.items = append(s.items, values...)
	return s
}

// Len returns the number of elements. It returns 0 for a nil Slice.
func (s *Slice[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Cap returns the number of elements the buffer holds without relocating.
// It returns 0 for a nil Slice.
func (s *Slice[T]) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.items)
}

// Get returns the element at idx. The boolean is false when idx is outside
// [0, Len()).
func (s *Slice[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= s.Len() {
		var zero T
		return zero, false
	}
	return s.items[idx], true
}

// First returns the element at index 0, or false when the slice is empty.
func (s *Slice[T]) First() (T, bool) {
	return s.Get(0)
}

// Last returns the element at index Len()-1, or false when the slice is empty.
func (s *Slice[T]) Last() (T, bool) {
	return s.Get(s.Len() - 1)
}

// Append adds v after the last element.
func (s *Slice[T]) Append(v T) {
	s.reserve(1)
	s.items = append(s.items, v)
}

// Insert places v at idx, shifting the elements from idx onward one position
// to the right. idx may equal Len(), which appends.
func (s *Slice[T]) Insert(idx int, v T) error {
	if idx < 0 || idx > len(s.items) {
		return s.config().rejected("insert", &IndexError{Op: "insert", Index: idx, Len: len(s.items)})
	}
	s.reserve(1)
	s.items = slices.Insert(s.items, idx, v)
	return nil
}

// Reverse reverses the element order in place.
func (s *Slice[T]) Reverse() {
	slices.Reverse(s.view())
}

// Compare reports whether s and other have the same length and eq holds for
// every pair of elements at the same index. A nil eq uses ==.
func (s *Slice[T]) Compare(other *Slice[T], eq EqualFunc[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	eq = orEqual(eq)
	theirs := other.view()
	for i, v := range s.view() {
		if !eq(v, theirs[i]) {
			return false
		}
	}
	return true
}

// CopyTo copies the elements of s into dst in order and returns how many were
// copied.
//
// Copying into an empty dst does nothing and returns 0. With overwrite set and
// differing lengths, dst is first reallocated to the capacity of s and ends up
// holding exactly the elements of s. Otherwise the leading positions of dst
// are overwritten, dst grows if s is longer, and trailing elements of dst are
// kept.
func (s *Slice[T]) CopyTo(dst *Slice[T], overwrite bool) int {
	if dst.Len() == 0 {
		return 0
	}

	src := s.view()
	if overwrite && len(src) != len(dst.items) {
		oldCap := cap(dst.items)
		dst.items = make([]T, 0, cap(src))
		dst.config().relocated(0, oldCap, cap(src))
	}

	n := copy(dst.items, src)
	if n < len(src) {
		dst.reserve(len(src) - n)
		dst.items = append(dst.items, src[n:]...)
	}
	return len(src)
}

// Contains reports whether v is present, using ==.
func (s *Slice[T]) Contains(v T) bool {
	return slices.Contains(s.view(), v)
}

// Delete removes the element at idx, shifting later elements left, and returns
// the new length.
func (s *Slice[T]) Delete(idx int) (int, error) {
	if err := checkIndex("delete", idx, len(s.items)); err != nil {
		return len(s.items), s.config().rejected("delete", err)
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return len(s.items), nil
}

// ReplaceAt overwrites the element at idx with v.
func (s *Slice[T]) ReplaceAt(idx int, v T) error {
	if err := checkIndex("replace", idx, len(s.items)); err != nil {
		return s.config().rejected("replace", err)
	}
	s.items[idx] = v
	return nil
}

// ReplaceValue replaces, in index order, up to times elements equal to old
// with replacement, and returns how many it replaced. A times of zero or less
// replaces nothing. Finding fewer matches than times is not an error; only an
// empty slice is.
func (s *Slice[T]) ReplaceValue(old, replacement T, times int, eq EqualFunc[T]) (int, error) {
	if len(s.items) == 0 {
		return 0, s.config().rejected("replace value", fmt.Errorf("replace value: %w", ErrEmpty))
	}
	eq = orEqual(eq)
	replaced := 0
	for i := 0; i < len(s.items) && replaced < times; i++ {
		if eq(s.items[i], old) {
			s.items[i] = replacement
			replaced++
		}
	}
	return replaced, nil
}

// ForEach calls fn for every element in order.
func (s *Slice[T]) ForEach(fn func(T)) {
	for _, v := range s.view() {
		fn(v)
	}
}

// All returns an iterator over index/element pairs in order.
func (s *Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.view() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (s *Slice[T]) Values() []T {
	return slices.Clone(s.view())
}

// Sort sorts the elements in place with cmp. The sort is not stable. A nil cmp
// leaves the slice untouched.
func (s *Slice[T]) Sort(cmp CompareFunc[T]) {
	if s.Len() < 2 || cmp == nil {
		return
	}
	slices.SortFunc(s.items, cmp)
}

// SortAscending sorts the elements in their natural order.
func (s *Slice[T]) SortAscending() {
	s.Sort(Ascending[T])
}

// Repeat appends v times times and returns the new length.
func (s *Slice[T]) Repeat(v T, times int) int {
	for range times {
		s.Append(v)
	}
	return len(s.items)
}

// Count returns the number of elements equal to v under eq. A nil eq uses ==.
func (s *Slice[T]) Count(v T, eq EqualFunc[T]) int {
	eq = orEqual(eq)
	n := 0
	for _, x := range s.view() {
		if eq(x, v) {
			n++
		}
	}
	return n
}

// Grow increases the capacity by exactly extra elements and returns the new
// capacity. The length is unchanged. extra <= 0 does nothing. Grow panics if
// the new capacity does not fit in an int, like make for an impossible size.
func (s *Slice[T]) Grow(extra int) int {
	if extra > math.MaxInt-cap(s.items) {
		panic(fmt.Sprintf("gslice: grow by %d overflows capacity %d", extra, cap(s.items)))
	}
	if extra > 0 {
		s.relocate(cap(s.items) + extra)
	}
	return cap(s.items)
}

// Concat appends the elements of other and returns the new length. When the
// buffer is too small it is resized to exactly the combined length. other is
// not modified; s.Concat(s) doubles the contents.
func (s *Slice[T]) Concat(other *Slice[T]) int {
	if other.Len() == 0 {
		return len(s.items)
	}
	src := other.items
	if need := len(s.items) + len(src); need > cap(s.items) {
		s.relocate(need)
	}
	s.items = append(s.items, src...)
	return len(s.items)
}

// config returns the options of s, falling back to the defaults for a zero
// Slice.
func (s *Slice[T]) config() *options {
	if s.opts == nil {
		return defaultOptions
	}
	return s.opts
}

func (s *Slice[T]) view() []T {
	if s == nil {
		return nil
	}
	return s.items
}

func (s *Slice[T]) reserve(extra int) {
	oldCap := cap(s.items)
	items, moved := container.Reserve(s.items, extra)
	if moved {
		s.items = items
		s.config().relocated(len(items), oldCap, cap(items))
	}
}

func (s *Slice[T]) relocate(capacity int) {
	oldCap := cap(s.items)
	s.items = container.Resize(s.items, capacity)
	s.config().relocated(len(s.items), oldCap, capacity)
}
