package matching

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type exhaustiveMatcher[T comparable] struct {
	policy ValidationPolicy
}

func (matcher *exhaustiveMatcher[T]) Match(a, b, c Set[T], m [][3]T) ([]Set[T], error) {
	//** Validate input
	if err := Validate(matcher.policy, a, b, c, m); err != nil {
		return nil, err
	}

	//** Build universe and family
	k := a.Len()
	u, s := buildFamily(a, b, c, m)

	logrus.WithFields(logrus.Fields{
		"triples":     len(m),
		"family":      len(s),
		"cardinality": matcher.policy.Cardinality,
		"slots":       matcher.policy.EnforceSlots,
	}).Debug("matching problem built")

	//** Search
	return SetCover(u, s, k)
}

func (matcher *exhaustiveMatcher[T]) Verify(matching []Set[T], a, b, c Set[T], m [][3]T) bool {
	if err := Validate(matcher.policy, a, b, c, m); err != nil {
		return false
	}
	u, s := buildFamily(a, b, c, m)
	return verify(matching, u, s, a.Len())
}

// Returns U = A ∪ B ∪ C and the family of 3-element subsets built from m, indexed by first occurrence
func buildFamily[T comparable](a, b, c Set[T], m [][3]T) (Set[T], []Set[T]) {
	u := a.Union(b, c)
	s := lo.Map(lo.Uniq(m), func(triple [3]T, _ int) Set[T] {
		return NewSet(triple[:]...)
	})
	return u, s
}

func verify[T comparable](matching []Set[T], u Set[T], s []Set[T], k int) bool {
	// Check that:
	// - The matching holds at least k members
	// - Every member belongs to the family (and therefore to the universe)
	// - Members are pairwise disjoint
	if len(matching) < k {
		return false
	}
	for _, member := range matching {
		if !member.IsSubset(u) || !lo.SomeBy(s, func(set Set[T]) bool { return equalSets(set, member) }) {
			return false
		}
	}
	return AllDisjoint(matching)
}

func equalSets[T comparable](set1, set2 Set[T]) bool {
	return set1.Len() == set2.Len() && set1.IsSubset(set2)
}
