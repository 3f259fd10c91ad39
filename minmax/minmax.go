// Package minmax implements the accumulator that tracks the minimum and
// maximum of a writer's accepted (non-filtered) values, with NaN-aware
// semantics: a NaN is stored only until a non-NaN value is observed, at
// which point it is permanently displaced, and subsequent NaNs are
// ignored outright.
package minmax

// Accumulator tracks the running min/max of a value sequence. The zero
// value is ready to use.
type Accumulator[T any] struct {
	has    bool
	min    T
	max    T
	minNaN bool
	maxNaN bool
}

// Observe folds v into the accumulator. isNaN reports whether v is this
// type's NaN-equivalent; less is the type's natural-order comparator and
// is never called with a NaN operand.
func (a *Accumulator[T]) Observe(v T, isNaN bool, less func(x, y T) bool) {
	if !a.has {
		a.min, a.max = v, v
		a.minNaN, a.maxNaN = isNaN, isNaN
		a.has = true
		return
	}

	if isNaN {
		// A NaN never displaces a non-NaN extremum, and never competes
		// with an existing NaN extremum either; it simply contributes
		// nothing once a real value has been seen.
		return
	}

	if a.minNaN || less(v, a.min) {
		a.min = v
		a.minNaN = false
	}
	if a.maxNaN || less(a.max, v) {
		a.max = v
		a.maxNaN = false
	}
}

// MinMax returns the accumulated minimum and maximum, and whether any
// value has been observed at all.
func (a *Accumulator[T]) MinMax() (min, max T, ok bool) {
	return a.min, a.max, a.has
}
