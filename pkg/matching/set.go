package matching

import "github.com/samber/lo"

type Set[T comparable] map[T]struct{}

func NewSet[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	for _, element := range elements {
		set.Add(element)
	}
	return set
}

func (set Set[T]) Add(element T) {
	set[element] = struct{}{}
}

func (set Set[T]) Has(element T) bool {
	_, ok := set[element]
	return ok
}

func (set Set[T]) Len() int {
	return len(set)
}

// Checks whether every element of set is also an element of other
func (set Set[T]) IsSubset(other Set[T]) bool {
	return lo.EveryBy(set.Elements(), other.Has)
}

func (set Set[T]) Union(others ...Set[T]) Set[T] {
	union := NewSet(set.Elements()...)
	for _, other := range others {
		for element := range other {
			union.Add(element)
		}
	}
	return union
}

// Elements are returned in map iteration order; callers needing a stable order must sort them
func (set Set[T]) Elements() []T {
	return lo.Keys(set)
}
