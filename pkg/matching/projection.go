package matching

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// ProjectionReport holds the size of the largest bipartite matching of each pair projection of a matching problem.
// Two elements are adjacent in a projection when some triple contains both of them.
type ProjectionReport struct {
	K  int
	AB int
	AC int
	BC int
}

// Feasible is false when some projection cannot match k pairs, which rules out any perfect matching.
// A feasible report does not guarantee that a perfect matching exists.
func (report ProjectionReport) Feasible() bool {
	return report.AB >= report.K && report.AC >= report.K && report.BC >= report.K
}

func Project[T comparable](a, b, c Set[T], m [][3]T) (ProjectionReport, error) {
	// Collect every (ordered) pair of distinct elements sharing a triple
	pairs := make(map[[2]T]bool)
	for _, triple := range m {
		for i := range triple {
			for j := range triple {
				if triple[i] != triple[j] {
					pairs[[2]T{triple[i], triple[j]}] = true
				}
			}
		}
	}

	report := ProjectionReport{K: a.Len()}
	var err error
	if report.AB, err = largestMatching(a, b, pairs); err != nil {
		return ProjectionReport{}, err
	}
	if report.AC, err = largestMatching(a, c, pairs); err != nil {
		return ProjectionReport{}, err
	}
	if report.BC, err = largestMatching(b, c, pairs); err != nil {
		return ProjectionReport{}, err
	}
	return report, nil
}

func largestMatching[T comparable](left, right Set[T], pairs map[[2]T]bool) (int, error) {
	if left.Len() == 0 || right.Len() == 0 {
		return 0, nil
	}

	// Build neighbors predicate based on pairs
	neighbors := func(leftAny any, rightAny any) (bool, error) {
		return pairs[[2]T{leftAny.(T), rightAny.(T)}], nil
	}

	// Transform both sides to slices of any
	toAny := func(element T, _ int) any { return element }
	leftAny, rightAny := lo.Map(left.Elements(), toAny), lo.Map(right.Elements(), toAny)

	graph, err := bipartitegraph.NewBipartiteGraph(leftAny, rightAny, neighbors)
	if err != nil {
		return 0, err
	}
	return len(graph.LargestMatching()), nil
}
