package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	t.Run("Perfect projections", func(t *testing.T) {
		//** Arrange
		a, b, c := referenceSets()

		//** Act
		report, err := Project(a, b, c, firstTriples)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, ProjectionReport{K: 3, AB: 3, AC: 3, BC: 3}, report)
		assert.True(t, report.Feasible())
	})

	t.Run("Infeasible projection implies no matching", func(t *testing.T) {
		//** Arrange
		a, b, c := NewSet(1, 2), NewSet(3, 4), NewSet(5, 6)
		triples := [][3]int{{1, 3, 5}, {2, 3, 6}}

		//** Act
		report, err := Project(a, b, c, triples)
		require.NoError(t, err)
		matching, err := TripartiteMatching(a, b, c, triples)
		require.NoError(t, err)

		//** Assert
		// Both triples use 3, hence A-B matches a single pair
		assert.Equal(t, 1, report.AB)
		assert.False(t, report.Feasible())
		assert.Empty(t, matching)
	})

	t.Run("Feasible projections do not guarantee a matching", func(t *testing.T) {
		a, b, c := NewSet(1, 2), NewSet(3, 4), NewSet(5, 6)
		triples := [][3]int{{1, 3, 5}, {2, 3, 6}, {1, 4, 6}}

		report, err := Project(a, b, c, triples)
		require.NoError(t, err)
		matching, err := TripartiteMatching(a, b, c, triples)
		require.NoError(t, err)

		assert.Equal(t, ProjectionReport{K: 2, AB: 2, AC: 2, BC: 2}, report)
		assert.True(t, report.Feasible())
		assert.Empty(t, matching)
	})

	t.Run("Empty sets", func(t *testing.T) {
		report, err := Project(NewSet[int](), NewSet[int](), NewSet[int](), nil)

		require.NoError(t, err)
		assert.Equal(t, ProjectionReport{}, report)
		assert.True(t, report.Feasible())
	})
}

func TestProjectAgreesWithGeneratedInstances(t *testing.T) {
	for _, instance := range generatedInstances(20) {
		report, err := Project(instance.A, instance.B, instance.C, instance.Triples)

		require.NoError(t, err)
		// Generated instances hold a planted perfect matching
		assert.True(t, report.Feasible(), "instance: %v", instance)
	}
}
