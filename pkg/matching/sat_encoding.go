package matching

import (
	"github.com/limaJavier/tripartite/pkg/sat"
	"github.com/samber/lo"
)

// EncodeSAT builds an exact-cover CNF over the family s: variable i+1 is true if and only if s[i] is selected.
// Each element of u must be covered by exactly one selected member. Under |A| = |B| = |C| this is equivalent to a perfect matching
// as long as every member holds three distinct elements; a triple repeating an element shrinks its member, so SetCover may
// still find k disjoint members while the encoding is unsatisfiable.
// Clause order follows map iteration; use EncodeMatchingSAT for a reproducible encoding.
func EncodeSAT[T comparable](u Set[T], s []Set[T]) sat.SAT {
	return encodeSAT(u.Elements(), s)
}

// EncodeMatchingSAT validates a matching problem and encodes its family with elements ordered by their first appearance in m.
// The family is returned alongside so that solutions can be decoded with DecodeSATSolution.
func EncodeMatchingSAT[T comparable](policy ValidationPolicy, a, b, c Set[T], m [][3]T) (sat.SAT, []Set[T], error) {
	if err := Validate(policy, a, b, c, m); err != nil {
		return sat.SAT{}, nil, err
	}
	u, s := buildFamily(a, b, c, m)

	order := lo.Uniq(lo.Flatten(lo.Map(m, func(triple [3]T, _ int) []T { return triple[:] })))
	// Uncovered elements all yield the same empty clause, so their relative order is irrelevant
	order = append(order, lo.Filter(u.Elements(), func(element T, _ int) bool { return !lo.Contains(order, element) })...)

	return encodeSAT(order, s), s, nil
}

func encodeSAT[T comparable](order []T, s []Set[T]) sat.SAT {
	// Group family indices by element
	containing := make(map[T][]int64)
	for i, set := range s {
		for element := range set {
			containing[element] = append(containing[element], int64(i+1))
		}
	}

	satInstance := sat.SAT{
		Variables: uint64(len(s)),
		Clauses:   [][]int64{},
	}
	for _, element := range order {
		variables := containing[element]

		// At least one member covers element
		satInstance.Clauses = append(satInstance.Clauses, append([]int64{}, variables...))

		// At most one member covers element
		for i := range len(variables) - 1 {
			for j := i + 1; j < len(variables); j++ {
				satInstance.Clauses = append(satInstance.Clauses, []int64{-variables[i], -variables[j]})
			}
		}
	}

	return satInstance
}

// DecodeSATSolution returns the members of s selected by the positive literals of solution
func DecodeSATSolution[T comparable](solution sat.SATSolution, s []Set[T]) []Set[T] {
	selected := lo.FilterMap(solution, func(literal int64, _ int) (Set[T], bool) {
		if literal > 0 && literal <= int64(len(s)) {
			return s[literal-1], true
		}
		return nil, false
	})
	return cloneSets(selected)
}

// EncodeSATSolution is the inverse of DecodeSATSolution: variable i+1 is true if and only if s[i] belongs to matching
func EncodeSATSolution[T comparable](matching []Set[T], s []Set[T]) sat.SATSolution {
	return lo.Map(s, func(set Set[T], i int) int64 {
		if lo.SomeBy(matching, func(member Set[T]) bool { return equalSets(member, set) }) {
			return int64(i + 1)
		}
		return -int64(i + 1)
	})
}
