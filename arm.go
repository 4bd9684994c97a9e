package gslice

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/gslice/internal/conv"
)

// arm is the active variant of a Tagged slice. The only implementation is
// typed[T], one instantiation per Kind, so every operation exists for every
// kind by construction.
type arm interface {
	kind() Kind
	length() int
	capacity() int
	get(idx int) (any, bool)
	append(v any) error
	appendInt(v int64) error
	appendUint(v uint64) error
	insert(idx int, v any) error
	reverse()
	compare(other arm, eq func(a, b any) bool) (bool, error)
	copyTo(dst arm, overwrite bool) (int, error)
	contains(v any) (bool, error)
	delete(idx int) (int, error)
	replaceAt(idx int, v any) error
	replaceValue(old, replacement any, times int, eq func(a, b any) bool) (int, error)
	forEach(fn func(any))
	values() []any
	sort(cmp func(a, b any) int)
	sortAscending()
	repeat(v any, times int) (int, error)
	count(v any, eq func(a, b any) bool) (int, error)
	grow(extra int) int
	concat(other arm) (int, error)
}

// newArm is the single place that maps a Kind to its element type.
func newArm(kind Kind, capacity int, o *options) (arm, error) {
	switch kind {
	case Int:
		return newIntegerArm[int](kind, capacity, o), nil
	case Int8:
		return newIntegerArm[int8](kind, capacity, o), nil
	case Int16:
		return newIntegerArm[int16](kind, capacity, o), nil
	case Int32:
		return newIntegerArm[int32](kind, capacity, o), nil
	case Int64:
		return newIntegerArm[int64](kind, capacity, o), nil
	case Uint:
		return newIntegerArm[uint](kind, capacity, o), nil
	case Uint8:
		return newIntegerArm[uint8](kind, capacity, o), nil
	case Uint16:
		return newIntegerArm[uint16](kind, capacity, o), nil
	case Uint32:
		return newIntegerArm[uint32](kind, capacity, o), nil
	case Uint64:
		return newIntegerArm[uint64](kind, capacity, o), nil
	case Uintptr:
		return newIntegerArm[uintptr](kind, capacity, o), nil
	case String:
		return &typed[string]{k: kind, s: newSlice[string](capacity, o)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

func newIntegerArm[T constraints.Integer](kind Kind, capacity int, o *options) *typed[T] {
	return &typed[T]{
		k:        kind,
		s:        newSlice[T](capacity, o),
		fromInt:  conv.Int64To[T],
		fromUint: conv.Uint64To[T],
	}
}

func newSlice[T Element](capacity int, o *options) *Slice[T] {
	return &Slice[T]{items: make([]T, 0, max(capacity, 0)), opts: o}
}

type typed[T Element] struct {
	k        Kind
	s        *Slice[T]
	fromInt  func(int64) (T, error)
	fromUint func(uint64) (T, error)
}

func (a *typed[T]) kind() Kind    { return a.k }
func (a *typed[T]) length() int   { return a.s.Len() }
func (a *typed[T]) capacity() int { return a.s.Cap() }

func (a *typed[T]) value(op string, v any) (T, error) {
	x, ok := v.(T)
	if !ok {
		return x, &KindError{Op: op, Want: a.k, Got: fmt.Sprintf("%T", v)}
	}
	return x, nil
}

func (a *typed[T]) peer(op string, other arm) (*typed[T], error) {
	o, ok := other.(*typed[T])
	if !ok {
		got := "nil"
		if other != nil {
			got = other.kind().String()
		}
		return nil, &KindError{Op: op, Want: a.k, Got: got}
	}
	return o, nil
}

func (a *typed[T]) get(idx int) (any, bool) {
	v, ok := a.s.Get(idx)
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *typed[T]) append(v any) error {
	x, err := a.value("append", v)
	if err != nil {
		return err
	}
	a.s.Append(x)
	return nil
}

func (a *typed[T]) appendInt(v int64) error {
	if a.fromInt == nil {
		return &KindError{Op: "append int", Want: a.k, Got: "int64"}
	}
	x, err := a.fromInt(v)
	if err != nil {
		return fmt.Errorf("append int to %s slice: %w", a.k, err)
	}
	a.s.Append(x)
	return nil
}

func (a *typed[T]) appendUint(v uint64) error {
	if a.fromUint == nil {
		return &KindError{Op: "append uint", Want: a.k, Got: "uint64"}
	}
	x, err := a.fromUint(v)
	if err != nil {
		return fmt.Errorf("append uint to %s slice: %w", a.k, err)
	}
	a.s.Append(x)
	return nil
}

func (a *typed[T]) insert(idx int, v any) error {
	x, err := a.value("insert", v)
	if err != nil {
		return err
	}
	return a.s.Insert(idx, x)
}

func (a *typed[T]) reverse() { a.s.Reverse() }

func (a *typed[T]) compare(other arm, eq func(a, b any) bool) (bool, error) {
	o, err := a.peer("compare", other)
	if err != nil {
		return false, err
	}
	return a.s.Compare(o.s, eraseEqual[T](eq)), nil
}

func (a *typed[T]) copyTo(dst arm, overwrite bool) (int, error) {
	o, err := a.peer("copy", dst)
	if err != nil {
		return 0, err
	}
	return a.s.CopyTo(o.s, overwrite), nil
}

func (a *typed[T]) contains(v any) (bool, error) {
	x, err := a.value("contains", v)
	if err != nil {
		return false, err
	}
	return a.s.Contains(x), nil
}

func (a *typed[T]) delete(idx int) (int, error) { return a.s.Delete(idx) }

func (a *typed[T]) replaceAt(idx int, v any) error {
	x, err := a.value("replace", v)
	if err != nil {
		return err
	}
	return a.s.ReplaceAt(idx, x)
}

func (a *typed[T]) replaceValue(old, replacement any, times int, eq func(a, b any) bool) (int, error) {
	o, err := a.value("replace value", old)
	if err != nil {
		return 0, err
	}
	r, err := a.value("replace value", replacement)
	if err != nil {
		return 0, err
	}
	return a.s.ReplaceValue(o, r, times, eraseEqual[T](eq))
}

func (a *typed[T]) forEach(fn func(any)) {
	a.s.ForEach(func(v T) { fn(v) })
}

func (a *typed[T]) values() []any {
	out := make([]any, 0, a.s.Len())
	for _, v := range a.s.items {
		out = append(out, v)
	}
	return out
}

func (a *typed[T]) sort(cmp func(a, b any) int) {
	if cmp == nil {
		return
	}
	a.s.Sort(func(x, y T) int { return cmp(x, y) })
}

func (a *typed[T]) sortAscending() { a.s.SortAscending() }

func (a *typed[T]) repeat(v any, times int) (int, error) {
	x, err := a.value("repeat", v)
	if err != nil {
		return a.s.Len(), err
	}
	return a.s.Repeat(x, times), nil
}

func (a *typed[T]) count(v any, eq func(a, b any) bool) (int, error) {
	x, err := a.value("count", v)
	if err != nil {
		return 0, err
	}
	return a.s.Count(x, eraseEqual[T](eq)), nil
}

func (a *typed[T]) grow(extra int) int { return a.s.Grow(extra) }

func (a *typed[T]) concat(other arm) (int, error) {
	o, err := a.peer("concat", other)
	if err != nil {
		return a.s.Len(), err
	}
	return a.s.Concat(o.s), nil
}

func eraseEqual[T Element](eq func(a, b any) bool) EqualFunc[T] {
	if eq == nil {
		return nil
	}
	return func(x, y T) bool { return eq(x, y) }
}
