package agent

type void struct{}

type set[T comparable] map[T]void

func newSet[T comparable](items ...T) set[T] {
	s := make(set[T], len(items))
	for _, item := range items {
		s[item] = void{}
	}
	return s
}

func (s set[T]) Add(item T) {
	s[item] = void{}
}

func (s set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s set[T]) Delete(item T) {
	delete(s, item)
}

func (s set[T]) Clone() set[T] {
	clone := make(set[T], len(s))
	for item := range s {
		clone[item] = void{}
	}
	return clone
}

func (s set[T]) Equal(other set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if _, ok := other[item]; !ok {
			return false
		}
	}
	return true
}

// Subset reports whether every element of s is in other.
func (s set[T]) Subset(other set[T]) bool {
	if len(s) > len(other) {
		return false
	}
	for item := range s {
		if _, ok := other[item]; !ok {
			return false
		}
	}
	return true
}

// Difference returns a new set with the elements of s not in other.
func (s set[T]) Difference(other set[T]) set[T] {
	result := make(set[T])
	for item := range s {
		if _, ok := other[item]; !ok {
			result[item] = void{}
		}
	}
	return result
}

func (s set[T]) Items() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}
