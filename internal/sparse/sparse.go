// Package sparse provides a sparse set over a bounded universe of uint32
// values with O(1) insertion and membership testing.
//
// The matching engine uses it for reachable-position sets (universe is
// sequence length + 1) and the NFA simulator for active-state sets (universe
// is the state count). Both need duplicate-free worklists with cheap resets,
// which is exactly what the sparse/dense pair gives.
package sparse

// Set is a set of uint32 values in [0, capacity). It keeps a sparse array
// for membership tests and a dense array for iteration in insertion order.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32
}

// New creates a set able to hold values in [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set and reports whether it was newly added.
// Inserting a value at or beyond capacity panics; callers size the set from
// the known universe.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Clear removes all elements in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the elements in insertion order. The slice aliases the
// set's storage and is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

// Max returns the largest element. It panics on an empty set.
func (s *Set) Max() uint32 {
	if len(s.dense) == 0 {
		panic("sparse: Max of empty set")
	}
	max := s.dense[0]
	for _, v := range s.dense[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
