package gslice

import (
	"errors"
	"fmt"
)

// Tagged is a slice whose element type is chosen at run time by a Kind.
//
// It offers the same operations as Slice, taking and returning elements as
// any. A value whose dynamic type is not the Go type of the slice's Kind is
// rejected with an error wrapping ErrKindMismatch; it is never converted.
// The Kind is fixed at construction.
//
// Build a Tagged with NewTagged. A nil or zero Tagged reads as an empty slice
// of kind Invalid, and its mutating methods fail with ErrUnknownKind.
type Tagged struct {
	arm  arm
	opts *options
}

// NewTagged creates an empty Tagged slice of the given kind with room for
// capacity elements.
func NewTagged(kind Kind, capacity int, opts ...Option) (*Tagged, error) {
	o := *applyOptions(opts)
	o.logger = o.logger.WithKind(kind)

	a, err := newArm(kind, capacity, &o)
	if err != nil {
		return nil, o.rejected("new", err)
	}
	return &Tagged{arm: a, opts: &o}, nil
}

// TypedView returns the Slice backing t when T is the Go type of t's Kind.
// The view shares storage with t: changes made through either are visible in
// both.
func TypedView[T Element](t *Tagged) (*Slice[T], bool) {
	a, ok := t.armOrNil().(*typed[T])
	if !ok {
		return nil, false
	}
	return a.s, true
}

// Kind returns the element kind, or Invalid for a nil Tagged.
func (t *Tagged) Kind() Kind {
	a := t.armOrNil()
	if a == nil {
		return Invalid
	}
	return a.kind()
}

// Len returns the number of elements. It returns 0 for a nil Tagged.
func (t *Tagged) Len() int {
	a := t.armOrNil()
	if a == nil {
		return 0
	}
	return a.length()
}

// Cap returns the capacity. It returns 0 for a nil Tagged.
func (t *Tagged) Cap() int {
	a := t.armOrNil()
	if a == nil {
		return 0
	}
	return a.capacity()
}

// Get returns the element at idx. The boolean is false when idx is outside
// [0, Len()).
func (t *Tagged) Get(idx int) (any, bool) {
	a := t.armOrNil()
	if a == nil {
		return nil, false
	}
	return a.get(idx)
}

// First returns the element at index 0, or false when the slice is empty.
func (t *Tagged) First() (any, bool) {
	return t.Get(0)
}

// Last returns the element at index Len()-1, or false when the slice is empty.
func (t *Tagged) Last() (any, bool) {
	return t.Get(t.Len() - 1)
}

// Append adds v after the last element.
func (t *Tagged) Append(v any) error {
	a, err := t.active("append")
	if err != nil {
		return err
	}
	return t.check("append", a.append(v))
}

// AppendInt converts v to the slice's integer kind and appends it. It fails
// if v does not fit the kind or the kind is String.
func (t *Tagged) AppendInt(v int64) error {
	a, err := t.active("append int")
	if err != nil {
		return err
	}
	return t.check("append int", a.appendInt(v))
}

// AppendUint converts v to the slice's integer kind and appends it. It fails
// if v does not fit the kind or the kind is String.
func (t *Tagged) AppendUint(v uint64) error {
	a, err := t.active("append uint")
	if err != nil {
		return err
	}
	return t.check("append uint", a.appendUint(v))
}

// Insert places v at idx, shifting later elements right. idx may equal Len().
func (t *Tagged) Insert(idx int, v any) error {
	a, err := t.active("insert")
	if err != nil {
		return err
	}
	return t.check("insert", a.insert(idx, v))
}

// Reverse reverses the element order in place.
func (t *Tagged) Reverse() {
	if a := t.armOrNil(); a != nil {
		a.reverse()
	}
}

// Compare reports whether t and other hold the same number of elements and eq
// holds for each pair. A nil eq uses ==. The kinds must match.
func (t *Tagged) Compare(other *Tagged, eq func(a, b any) bool) (bool, error) {
	a, err := t.active("compare")
	if err != nil {
		return false, err
	}
	ok, err := a.compare(other.armOrNil(), eq)
	return ok, t.check("compare", err)
}

// CopyTo copies the elements of t into dst with the semantics of Slice.CopyTo.
// The kinds must match.
func (t *Tagged) CopyTo(dst *Tagged, overwrite bool) (int, error) {
	a, err := t.active("copy")
	if err != nil {
		return 0, err
	}
	n, err := a.copyTo(dst.armOrNil(), overwrite)
	return n, t.check("copy", err)
}

// Contains reports whether v is present, using ==.
func (t *Tagged) Contains(v any) (bool, error) {
	a, err := t.active("contains")
	if err != nil {
		return false, err
	}
	ok, err := a.contains(v)
	return ok, t.check("contains", err)
}

// Delete removes the element at idx and returns the new length.
func (t *Tagged) Delete(idx int) (int, error) {
	a, err := t.active("delete")
	if err != nil {
		return 0, err
	}
	return a.delete(idx)
}

// ReplaceAt overwrites the element at idx with v.
func (t *Tagged) ReplaceAt(idx int, v any) error {
	a, err := t.active("replace")
	if err != nil {
		return err
	}
	return t.check("replace", a.replaceAt(idx, v))
}

// ReplaceValue replaces up to times elements equal to old with replacement and
// returns how many it replaced.
func (t *Tagged) ReplaceValue(old, replacement any, times int, eq func(a, b any) bool) (int, error) {
	a, err := t.active("replace value")
	if err != nil {
		return 0, err
	}
	n, err := a.replaceValue(old, replacement, times, eq)
	return n, t.check("replace value", err)
}

// ForEach calls fn for every element in order.
func (t *Tagged) ForEach(fn func(any)) {
	if a := t.armOrNil(); a != nil {
		a.forEach(fn)
	}
}

// Values returns a copy of the elements.
func (t *Tagged) Values() []any {
	a := t.armOrNil()
	if a == nil {
		return []any{}
	}
	return a.values()
}

// Sort sorts the elements in place with cmp, which receives values of the
// slice's Go type. A nil cmp leaves the slice untouched.
func (t *Tagged) Sort(cmp func(a, b any) int) {
	if a := t.armOrNil(); a != nil {
		a.sort(cmp)
	}
}

// SortAscending sorts the elements in their natural order.
func (t *Tagged) SortAscending() {
	if a := t.armOrNil(); a != nil {
		a.sortAscending()
	}
}

// Repeat appends v times times and returns the new length.
func (t *Tagged) Repeat(v any, times int) (int, error) {
	a, err := t.active("repeat")
	if err != nil {
		return 0, err
	}
	n, err := a.repeat(v, times)
	return n, t.check("repeat", err)
}

// Count returns the number of elements equal to v under eq. A nil eq uses ==.
func (t *Tagged) Count(v any, eq func(a, b any) bool) (int, error) {
	a, err := t.active("count")
	if err != nil {
		return 0, err
	}
	n, err := a.count(v, eq)
	return n, t.check("count", err)
}

// Grow increases the capacity by exactly extra elements and returns the new
// capacity. It does nothing on a nil or zero Tagged.
func (t *Tagged) Grow(extra int) int {
	a := t.armOrNil()
	if a == nil {
		return 0
	}
	return a.grow(extra)
}

// Concat appends the elements of other and returns the new length. The kinds
// must match.
func (t *Tagged) Concat(other *Tagged) (int, error) {
	a, err := t.active("concat")
	if err != nil {
		return 0, err
	}
	n, err := a.concat(other.armOrNil())
	return n, t.check("concat", err)
}

// String returns a short description such as "Tagged[int32](len=3, cap=4)".
func (t *Tagged) String() string {
	return fmt.Sprintf("Tagged[%s](len=%d, cap=%d)", t.Kind(), t.Len(), t.Cap())
}

func (t *Tagged) armOrNil() arm {
	if t == nil {
		return nil
	}
	return t.arm
}

// active returns the arm of t, or an error wrapping ErrUnknownKind when t was
// not built by NewTagged.
func (t *Tagged) active(op string) (arm, error) {
	if a := t.armOrNil(); a != nil {
		return a, nil
	}
	err := fmt.Errorf("%s: %w: %s", op, ErrUnknownKind, Invalid)
	return nil, t.config().rejected(op, err)
}

func (t *Tagged) config() *options {
	if t == nil || t.opts == nil {
		return defaultOptions
	}
	return t.opts
}

// check reports kind and conversion errors raised by the arm. Index and
// emptiness errors are already reported by the backing Slice.
func (t *Tagged) check(op string, err error) error {
	if err == nil {
		return nil
	}
	var ke *KindError
	if errors.As(err, &ke) || errors.Is(err, ErrOverflow) {
		return t.config().rejected(op, err)
	}
	return err
}
