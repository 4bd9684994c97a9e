// Package testutil provides testing utilities for gslice.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers for generating
// element sequences of every supported kind.
//
// # Random Elements
//
//	rng := testutil.NewRNG(seed)
//	ints := testutil.Integers[int16](rng, 1000, 50) // values in [0, 50)
//	words := rng.Strings(100, 8)
package testutil
