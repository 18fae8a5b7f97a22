package matching

// AllDisjoint checks whether the given sets are pairwise disjoint by accumulating their running union and stopping at the first collision.
// An empty collection and a single set are trivially disjoint.
func AllDisjoint[T comparable](sets []Set[T]) bool {
	_, ok := firstCollision(sets)
	return !ok
}

// Returns the first element (in sequence order) already present in the running union, if any
func firstCollision[T comparable](sets []Set[T]) (T, bool) {
	union := make(map[T]struct{})
	for _, set := range sets {
		for element := range set {
			if _, ok := union[element]; ok {
				return element, true
			}
			union[element] = struct{}{}
		}
	}

	var zero T
	return zero, false
}
