package gslice

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/gslice/internal/container"
	"github.com/hupe1980/gslice/internal/conv"
)

// Positions is a set of element indexes backed by a Roaring bitmap.
//
// Indexes are stored as uint32, so only the first 2^32 elements of a slice can
// be addressed.
type Positions struct {
	rb *roaring.Bitmap
}

// NewPositions creates a set holding the given indexes. Negative indexes and
// indexes beyond the uint32 range are ignored.
func NewPositions(indexes ...int) *Positions {
	p := &Positions{rb: roaring.New()}
	for _, idx := range indexes {
		p.Add(idx)
	}
	return p
}

// Add adds idx to the set. It reports false if idx cannot be represented.
func (p *Positions) Add(idx int) bool {
	v, err := conv.IntToUint32(idx)
	if err != nil {
		return false
	}
	p.rb.Add(v)
	return true
}

// Contains reports whether idx is in the set.
func (p *Positions) Contains(idx int) bool {
	v, err := conv.IntToUint32(idx)
	if err != nil {
		return false
	}
	return p.rb.Contains(v)
}

// Len returns the number of indexes in the set.
func (p *Positions) Len() int {
	if p == nil {
		return 0
	}
	return int(p.rb.GetCardinality())
}

// All returns the indexes in ascending order.
func (p *Positions) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if p == nil {
			return
		}
		it := p.rb.Iterator()
		for it.HasNext() {
			idx, err := conv.Uint32ToInt(it.Next())
			if err != nil || !yield(idx) {
				return
			}
		}
	}
}

// Indexes returns the indexes in ascending order.
func (p *Positions) Indexes() []int {
	out := make([]int, 0, p.Len())
	for idx := range p.All() {
		out = append(out, idx)
	}
	return out
}

// Matches returns the indexes of every element equal to v under eq. A nil eq
// uses ==.
func (s *Slice[T]) Matches(v T, eq EqualFunc[T]) *Positions {
	eq = orEqual(eq)
	p := NewPositions()
	for i, x := range s.view() {
		if eq(x, v) && !p.Add(i) {
			break
		}
	}
	return p
}

// DeleteAt removes every element whose index is in p, keeping the remaining
// elements in their relative order, and returns the new length. Indexes at or
// beyond Len() are ignored.
func (s *Slice[T]) DeleteAt(p *Positions) int {
	if p.Len() == 0 {
		return len(s.items)
	}
	w := 0
	for i, x := range s.items {
		if p.Contains(i) {
			continue
		}
		s.items[w] = x
		w++
	}
	container.Clear(s.items, w, len(s.items))
	s.items = s.items[:w]
	return w
}
