// Package gslice provides growable, indexable slices with explicit capacity
// management for integer and string elements.
//
// Two container types implement the same operation set:
//
//   - Slice[T]: a generic slice, one algorithm instantiated per element type
//   - Tagged: a slice whose element Kind is picked at run time
//
// # Quick Start
//
//	s := gslice.New[int32](4)
//	for i := range int32(5) {
//	    s.Append(i)
//	}
//	fmt.Println(s.Len(), s.Cap()) // 5 8
//
//	v, ok := s.Get(10) // 0 false
//
// Tagged slices take and return values as any and reject values of the wrong
// type instead of converting them:
//
//	t, _ := gslice.NewTagged(gslice.Uint, 10)
//	_ = t.Append(uint(100))
//	err := t.Append("100") // errors.Is(err, gslice.ErrKindMismatch)
//
// # Growth
//
// When an append finds the buffer full, capacity doubles (zero grows to one).
// Grow adds an exact amount of capacity for bulk loads, and Concat resizes to
// exactly the combined length when it needs more room.
//
// # Errors
//
// Lookups return a boolean next to the value, so a stored zero is never
// confused with a missing index. Mutations return errors that wrap ErrEmpty,
// ErrOutOfRange, ErrKindMismatch or ErrOverflow:
//
//	if _, err := s.Delete(99); errors.Is(err, gslice.ErrOutOfRange) {
//	    // ...
//	}
//
// # Concurrency
//
// Slices are not safe for concurrent mutation. Methods that only read may run
// in parallel with each other; CountParallel and ContainsParallel split a scan
// across goroutines.
package gslice
