// Package hashfilter implements the slice partitioning protocol shared by
// every column reader and writer: a record belongs to slice s iff
// hash(value) mod slices == s, with an optional round-robin rule for
// distributing None values across slices instead of pinning them to
// slice 0.
package hashfilter

import "github.com/eBay/accelerator/errs"

// Filter holds one instance's slice assignment.
type Filter struct {
	Sliceno    uint32
	Slices     uint32
	SpreadNone bool

	noneCounter uint64
}

// New validates and constructs a Filter. slices must be positive and
// sliceno must be in [0, slices).
func New(sliceno, slices uint32, spreadNone bool) (*Filter, error) {
	if slices == 0 {
		return nil, errs.NewBadConfig("hashfilter: slices must be positive")
	}
	if sliceno >= slices {
		return nil, errs.NewBadConfig("hashfilter: sliceno %d out of range for %d slices", sliceno, slices)
	}

	return &Filter{Sliceno: sliceno, Slices: slices, SpreadNone: spreadNone}, nil
}

// Accept reports whether a non-None value with content hash h belongs to
// this instance's slice.
func (f *Filter) Accept(h uint64) bool {
	return uint32(h%uint64(f.Slices)) == f.Sliceno //nolint:gosec
}

// AcceptNone reports whether the next None value belongs to this
// instance's slice, advancing the round-robin counter when SpreadNone is
// enabled. With SpreadNone disabled, every None is pinned to slice 0.
func (f *Filter) AcceptNone() bool {
	if !f.SpreadNone {
		return f.Sliceno == 0
	}

	s := uint32(f.noneCounter % uint64(f.Slices)) //nolint:gosec
	f.noneCounter++
	return s == f.Sliceno
}
