package matching

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// A, B and C share at least one element
	ErrNotDisjoint = errors.NewKind("sets are not disjoint: element %v appears more than once")

	ErrCardinalityMismatch = errors.NewKind("unequal cardinality: |A| = %d, |B| = %d, |C| = %d")

	// A member of the candidate family contains an element outside the universe
	ErrInvalidSubset = errors.NewKind("family member %d contains elements not present in the universe: %v")

	// The enumeration counter is a uint64, hence at most 63 family members can be addressed
	ErrFamilyTooLarge = errors.NewKind("family of %d subsets exceeds the maximum of %d")

	ErrSlotMismatch = errors.NewKind("triple %d (%v) does not take its elements from A, B and C respectively")

	ErrInvalidInstance = errors.NewKind("invalid instance: %s")
)
