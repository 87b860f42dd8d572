package ecs

// store is the type-erased view the world needs for destroy.
type store interface {
	remove(id entityID) bool
	has(id entityID) bool
	len() int
}

// sparseSet keeps components densely packed, indexed by entity slot.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	sparse map[entityID]int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{sparse: map[entityID]int{}}
}

func (s *sparseSet[T]) has(id entityID) bool {
	_, ok := s.sparse[id]
	return ok
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	idx, ok := s.sparse[id]
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(id entityID, v *T) {
	if idx, ok := s.sparse[id]; ok {
		s.values[idx] = v
		return
	}
	s.sparse[id] = len(s.dense)
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
}

// remove swaps the last element into the hole.
func (s *sparseSet[T]) remove(id entityID) bool {
	idx, ok := s.sparse[id]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	lastID := s.dense[last]
	s.dense[idx] = lastID
	s.values[idx] = s.values[last]
	s.sparse[lastID] = idx

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	delete(s.sparse, id)
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}
