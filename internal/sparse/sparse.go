// Package sparse provides a sparse set of small integer identifiers.
//
// A sparse set supports O(1) insertion and membership testing without
// zeroing its backing arrays. The multi-pattern matcher uses
// one per needle length group to record which needles already have a
// result, so a sweep can stop as soon as the whole group is resolved.
package sparse

// SparseSet is a set of uint32 values drawn from [0, capacity).
// The sparse array maps a value to its index in the dense array; entries
// are trusted only when the dense array points back at the same value.
type SparseSet struct {
	sparse []uint32 // value -> index in dense
	dense  []uint32 // members in insertion order
}

// NewSparseSet creates a set that can hold values below capacity.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting a present value is a no-op.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	//nolint:gosec // G115: len(dense) < capacity, which is a uint32
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if uint64(value) >= uint64(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return uint64(idx) < uint64(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int { return len(s.dense) }

// Cap returns the exclusive upper bound on storable values.
func (s *SparseSet) Cap() int { return len(s.sparse) }
