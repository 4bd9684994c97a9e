package gslice

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns three distinct values of the Go type of k, in ascending order.
func sample(k Kind) []any {
	switch k {
	case Int:
		return []any{int(1), int(2), int(3)}
	case Int8:
		return []any{int8(1), int8(2), int8(3)}
	case Int16:
		return []any{int16(1), int16(2), int16(3)}
	case Int32:
		return []any{int32(1), int32(2), int32(3)}
	case Int64:
		return []any{int64(1), int64(2), int64(3)}
	case Uint:
		return []any{uint(1), uint(2), uint(3)}
	case Uint8:
		return []any{uint8(1), uint8(2), uint8(3)}
	case Uint16:
		return []any{uint16(1), uint16(2), uint16(3)}
	case Uint32:
		return []any{uint32(1), uint32(2), uint32(3)}
	case Uint64:
		return []any{uint64(1), uint64(2), uint64(3)}
	case Uintptr:
		return []any{uintptr(1), uintptr(2), uintptr(3)}
	case String:
		return []any{"a", "b", "c"}
	}
	return nil
}

func TestTagged_EveryKind(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			vals := sample(k)
			require.Len(t, vals, 3)

			s, err := NewTagged(k, 2)
			require.NoError(t, err)
			assert.Equal(t, k, s.Kind())
			assert.Equal(t, 2, s.Cap())

			for _, v := range []any{vals[2], vals[0], vals[1]} {
				require.NoError(t, s.Append(v))
			}
			assert.Equal(t, 3, s.Len())
			assert.Equal(t, 4, s.Cap())

			got, ok := s.Get(0)
			require.True(t, ok)
			assert.Equal(t, vals[2], got)
			_, ok = s.Get(3)
			assert.False(t, ok)

			kind, ok := KindOf(got)
			require.True(t, ok)
			assert.Equal(t, k, kind)

			s.SortAscending()
			assert.Equal(t, vals, s.Values())

			s.Reverse()
			first, _ := s.First()
			last, _ := s.Last()
			assert.Equal(t, vals[2], first)
			assert.Equal(t, vals[0], last)

			found, err := s.Contains(vals[1])
			require.NoError(t, err)
			assert.True(t, found)

			n, err := s.Count(vals[1], nil)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			n, err = s.Delete(1)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			require.NoError(t, s.ReplaceAt(0, vals[0]))
			n, err = s.Repeat(vals[1], 2)
			require.NoError(t, err)
			assert.Equal(t, 4, n)

			replaced, err := s.ReplaceValue(vals[1], vals[2], 1, nil)
			require.NoError(t, err)
			assert.Equal(t, 1, replaced)
			assert.Equal(t, []any{vals[0], vals[0], vals[2], vals[1]}, s.Values())

			other, err := NewTagged(k, 0)
			require.NoError(t, err)
			require.NoError(t, other.Append(vals[0]))
			n, err = s.Concat(other)
			require.NoError(t, err)
			assert.Equal(t, 5, n)

			mirror, err := NewTagged(k, 0)
			require.NoError(t, err)
			require.NoError(t, mirror.Append(vals[2]))
			copied, err := s.CopyTo(mirror, true)
			require.NoError(t, err)
			assert.Equal(t, 5, copied)

			same, err := s.Compare(mirror, nil)
			require.NoError(t, err)
			assert.True(t, same)

			assert.Equal(t, s.Cap()+3, s.Grow(3))
		})
	}
}

func TestTagged_UnknownKind(t *testing.T) {
	_, err := NewTagged(Invalid, 4)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewTagged(Kind(200), 4)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestTagged_KindMismatch(t *testing.T) {
	s, err := NewTagged(Uint, 4)
	require.NoError(t, err)

	err = s.Append(100) // untyped constant becomes int, not uint
	require.ErrorIs(t, err, ErrKindMismatch)

	var ke *KindError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, Uint, ke.Want)
	assert.Equal(t, "int", ke.Got)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Append(uint(100)))

	_, err = s.Contains("100")
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = s.Count(int64(100), nil)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.ErrorIs(t, s.ReplaceAt(0, 1.5), ErrKindMismatch)
	_, err = s.ReplaceValue(uint(100), nil, 1, nil)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = s.Repeat(uint8(1), 3)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.ErrorIs(t, s.Insert(0, "x"), ErrKindMismatch)

	other, err := NewTagged(Uint64, 1)
	require.NoError(t, err)
	_, err = s.Compare(other, nil)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = s.Concat(other)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = s.CopyTo(other, true)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = s.Compare(nil, nil)
	assert.ErrorIs(t, err, ErrKindMismatch)

	assert.Equal(t, []any{uint(100)}, s.Values())
}

func TestTagged_AppendNumbers(t *testing.T) {
	t.Run("narrowing", func(t *testing.T) {
		s, err := NewTagged(Int8, 0)
		require.NoError(t, err)

		require.NoError(t, s.AppendInt(-128))
		require.NoError(t, s.AppendUint(127))
		assert.ErrorIs(t, s.AppendInt(128), ErrOverflow)
		assert.ErrorIs(t, s.AppendUint(math.MaxUint64), ErrOverflow)
		assert.Equal(t, []any{int8(-128), int8(127)}, s.Values())
	})

	t.Run("unsigned rejects negative", func(t *testing.T) {
		s, err := NewTagged(Uint32, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, s.AppendInt(-1), ErrOverflow)
		require.NoError(t, s.AppendInt(math.MaxUint32))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("string kind", func(t *testing.T) {
		s, err := NewTagged(String, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, s.AppendInt(1), ErrKindMismatch)
		assert.ErrorIs(t, s.AppendUint(1), ErrKindMismatch)
	})
}

func TestTagged_IndexErrors(t *testing.T) {
	s, err := NewTagged(Int64, 2)
	require.NoError(t, err)

	_, err = s.Delete(0)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, s.ReplaceAt(0, int64(1)), ErrEmpty)
	_, err = s.ReplaceValue(int64(1), int64(2), 1, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, ok := s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)

	require.NoError(t, s.Append(int64(5)))
	_, err = s.Delete(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, s.Insert(3, int64(1)), ErrOutOfRange)
}

func TestTagged_CustomFuncs(t *testing.T) {
	s, err := NewTagged(String, 4)
	require.NoError(t, err)
	for _, v := range []string{"Beta", "alpha", "ALPHA", "gamma"} {
		require.NoError(t, s.Append(v))
	}

	fold := func(a, b any) bool { return strings.EqualFold(a.(string), b.(string)) }
	n, err := s.Count("alpha", fold)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	s.Sort(func(a, b any) int {
		return strings.Compare(strings.ToLower(a.(string)), strings.ToLower(b.(string)))
	})
	last, _ := s.Last()
	assert.Equal(t, "gamma", last)

	s.Sort(nil)
	last, _ = s.Last()
	assert.Equal(t, "gamma", last)

	var total int
	s.ForEach(func(v any) { total += len(v.(string)) })
	assert.Equal(t, 19, total)
}

func TestTagged_TypedView(t *testing.T) {
	s, err := NewTagged(Int16, 4)
	require.NoError(t, err)

	view, ok := TypedView[int16](s)
	require.True(t, ok)
	view.Append(7)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Append(int16(8)))
	assert.Equal(t, []int16{7, 8}, view.Values())

	_, ok = TypedView[int32](s)
	assert.False(t, ok)
	_, ok = TypedView[int16](nil)
	assert.False(t, ok)
}

func TestTagged_ZeroValue(t *testing.T) {
	mc := &BasicMetricsCollector{}
	valid, err := NewTagged(Int, 1, WithMetricsCollector(mc))
	require.NoError(t, err)

	for name, s := range map[string]*Tagged{"nil": nil, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Invalid, s.Kind())
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, 0, s.Cap())
			assert.Equal(t, 0, s.Grow(4))
			assert.Empty(t, s.Values())
			assert.Equal(t, "Tagged[invalid](len=0, cap=0)", s.String())

			_, ok := s.Get(0)
			assert.False(t, ok)
			_, ok = s.First()
			assert.False(t, ok)
			_, ok = s.Last()
			assert.False(t, ok)

			s.Reverse()
			s.SortAscending()
			s.Sort(func(a, b any) int { return 0 })
			s.ForEach(func(any) { t.Fatal("no elements expected") })

			assert.ErrorIs(t, s.Append(1), ErrUnknownKind)
			assert.ErrorIs(t, s.AppendInt(1), ErrUnknownKind)
			assert.ErrorIs(t, s.AppendUint(1), ErrUnknownKind)
			assert.ErrorIs(t, s.Insert(0, 1), ErrUnknownKind)
			assert.ErrorIs(t, s.ReplaceAt(0, 1), ErrUnknownKind)

			_, err := s.Delete(0)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.ReplaceValue(1, 2, 1, nil)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.Repeat(1, 2)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.Contains(1)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.Count(1, nil)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.Compare(valid, nil)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.CopyTo(valid, true)
			assert.ErrorIs(t, err, ErrUnknownKind)
			_, err = s.Concat(valid)
			assert.ErrorIs(t, err, ErrUnknownKind)

			_, ok = TypedView[int](s)
			assert.False(t, ok)

			_, err = valid.Concat(s)
			assert.ErrorIs(t, err, ErrKindMismatch)
		})
	}

	assert.Equal(t, int64(2), mc.GetStats().Failures)
}

func TestTagged_String(t *testing.T) {
	s, err := NewTagged(Int32, 4)
	require.NoError(t, err)
	require.NoError(t, s.Append(int32(1)))
	assert.Equal(t, "Tagged[int32](len=1, cap=4)", s.String())
}

func TestKind(t *testing.T) {
	assert.Len(t, Kinds(), 12)
	for _, k := range Kinds() {
		assert.True(t, k.Valid())
		assert.NotEmpty(t, sample(k))
	}
	assert.False(t, Invalid.Valid())
	assert.Equal(t, "Kind(99)", Kind(99).String())

	_, ok := KindOf(1.5)
	assert.False(t, ok)
	k, ok := KindOf(uintptr(0))
	assert.True(t, ok)
	assert.Equal(t, Uintptr, k)
}
