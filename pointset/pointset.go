// Package pointset provides a batch-built container that tracks unique
// points by exact coordinate identity.
//
// A PointSet pairs an insertion-ordered sequence with an index from the
// canonical coordinate triple (geo3d's Tuple key) to the insertion position,
// so points can be looked up both ways: by position and by coordinates.
// Geometric algorithms that assume non-duplicate vertex sets use it for
// uniqueness bookkeeping before they run.
//
// Identity is exact: two points are the same point only when their triples
// are bitwise-equal floats. There is no tolerance-based merging.
package pointset

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/hupe1980/geo3d"
)

var (
	// ErrPointNotFound is returned by reverse lookup for coordinates that
	// were never inserted.
	ErrPointNotFound = errors.New("point not found")

	// ErrIndexOutOfRange is returned by Get for an integer key outside the
	// sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// PointSet holds points in insertion order together with a reverse index
// from coordinate triple to insertion position.
//
// All methods are safe for concurrent use; each Insert batch is applied as
// a single critical section, so readers never observe a half-applied batch.
type PointSet struct {
	mu     sync.RWMutex
	policy DuplicatePolicy
	seq    []geo3d.Point
	index  map[[3]float64]int
}

// New creates an empty PointSet.
func New(opts ...Option) *PointSet {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &PointSet{
		policy: o.duplicatePolicy,
		index:  make(map[[3]float64]int),
	}
}

// FromValues creates a PointSet seeded with the given point-like values in
// order. Each value must be one of the shapes geo3d.AsPoint accepts.
func FromValues(values []any, opts ...Option) (*PointSet, error) {
	s := New(opts...)
	if err := s.Insert(values...); err != nil {
		return nil, err
	}
	return s, nil
}

// Insert converts each value to a point and records it in input order.
//
// Under KeepAll a point is always appended, and its coordinate entry is
// overwritten so the newest insertion wins reverse lookup. Under
// SkipDuplicates already-indexed coordinates are dropped. The whole batch
// is converted before any of it is applied, so a bad value cannot leave a
// half-applied batch behind.
func (s *PointSet) Insert(values ...any) error {
	points := make([]geo3d.Point, 0, len(values))
	for _, val := range values {
		p, err := geo3d.AsPoint(val)
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range points {
		key := p.Tuple()
		if _, ok := s.index[key]; ok && s.policy == SkipDuplicates {
			continue
		}
		s.index[key] = len(s.seq)
		s.seq = append(s.seq, p)
	}
	return nil
}

// Len returns the number of points in the sequence, duplicates included
// under KeepAll.
func (s *PointSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seq)
}

// At returns the point at position i. Negative indices count from the end.
// Out-of-range indices panic with the runtime's bounds error.
func (s *PointSet) At(i int) geo3d.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 {
		i += len(s.seq)
	}
	return s.seq[i]
}

// Slice returns a fresh copy of the points in the half-open range [lo, hi).
func (s *PointSet) Slice(lo, hi int) []geo3d.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.seq[lo:hi])
}

// IndexOf returns the insertion position recorded for the coordinates of
// value, which must be one of the shapes geo3d.AsPoint accepts. Under
// KeepAll the position of the last insertion wins.
func (s *PointSet) IndexOf(value any) (int, error) {
	p, err := geo3d.AsPoint(value)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[p.Tuple()]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPointNotFound, p)
	}
	return i, nil
}

// Get resolves key by its type: an int is a position in the sequence and
// yields a geo3d.Point, while a point-like key (geo3d.Point, geo3d.Vec3 or
// [3]float64) is resolved through the coordinate index and yields an int.
// Unlike At, an out-of-range position returns ErrIndexOutOfRange because
// the key arrives untyped.
func (s *PointSet) Get(key any) (any, error) {
	if i, ok := key.(int); ok {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if i < 0 {
			i += len(s.seq)
		}
		if i < 0 || i >= len(s.seq) {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
		}
		return s.seq[i], nil
	}
	return s.IndexOf(key)
}

// Points materializes the current sequence as a fresh slice on every call.
func (s *PointSet) Points() []geo3d.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.seq)
}
