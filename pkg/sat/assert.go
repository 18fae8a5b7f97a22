package sat

import "github.com/samber/lo"

// AssertSATSolution reports whether satSolution assigns every variable at most once and satisfies each clause of satInstance
func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	if len(lo.FindDuplicates(lo.Map(satSolution, func(literal int64, _ int) int64 {
		if literal < 0 {
			return -literal
		}
		return literal
	}))) > 0 {
		return false
	}

	assigned := lo.SliceToMap(satSolution, func(literal int64) (int64, struct{}) { return literal, struct{}{} })
	return lo.EveryBy(satInstance.Clauses, func(clause []int64) bool {
		return lo.SomeBy(clause, func(literal int64) bool {
			_, ok := assigned[literal]
			return ok
		})
	})
}
