package matching

import (
	"math/bits"

	"github.com/sirupsen/logrus"
)

// MaxFamilySize is the largest family SetCover can enumerate with its uint64 counter
const MaxFamilySize = 63

// SetCover looks for at least k pairwise-disjoint members of s.
//
// Every non-empty combination of s is visited by counting from 1 to 2^|s| - 1, where bit i of the counter selects s[i].
// The first combination (in counter order) holding k or more members that are pairwise disjoint is returned.
// An empty result with a nil error means no such combination exists.
func SetCover[T comparable](u Set[T], s []Set[T], k int) ([]Set[T], error) {
	// Make sure all members of s are subsets of u
	for i, set := range s {
		if !set.IsSubset(u) {
			return nil, ErrInvalidSubset.New(i, set.Elements())
		}
	}

	if len(s) > MaxFamilySize {
		return nil, ErrFamilyTooLarge.New(len(s), MaxFamilySize)
	}

	logger := logrus.WithFields(logrus.Fields{
		"universe": u.Len(),
		"family":   len(s),
		"k":        k,
	})
	logger.Debug("starting exhaustive search")

	combinations := uint64(1) << len(s)
	examined := 0
	for combination := uint64(1); combination < combinations; combination++ {
		// Only combinations of at least k members are of interest
		if bits.OnesCount64(combination) < k {
			continue
		}
		examined++

		sets := decodeCombination(s, combination)
		if AllDisjoint(sets) {
			logger.WithFields(logrus.Fields{
				"combination": combination,
				"examined":    examined,
			}).Debug("disjoint combination found")
			return cloneSets(sets), nil
		}
	}

	logger.WithField("examined", examined).Debug("no disjoint combination found")
	return []Set[T]{}, nil
}

// Materializes the members of s selected by the bits of combination, lowest index first
func decodeCombination[T comparable](s []Set[T], combination uint64) []Set[T] {
	sets := make([]Set[T], 0, bits.OnesCount64(combination))
	for index := 0; combination > 0; index, combination = index+1, combination>>1 {
		if combination&1 == 1 {
			sets = append(sets, s[index])
		}
	}
	return sets
}

func cloneSets[T comparable](sets []Set[T]) []Set[T] {
	clones := make([]Set[T], len(sets))
	for i, set := range sets {
		clones[i] = NewSet(set.Elements()...)
	}
	return clones
}
