package sat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDIMACS(t *testing.T) {
	//** Arrange
	satInstance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, -2}, {2, 3}, {}},
	}

	//** Act
	dimacs := satInstance.ToDIMACS()

	//** Assert
	assert.Equal(t, "p cnf 3 3\n1 -2 0\n2 3 0\n0\n", dimacs)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteDIMACS(t *testing.T) {
	satInstance := SAT{Variables: 1, Clauses: [][]int64{{1}}}

	t.Run("Correct flow", func(t *testing.T) {
		var buffer bytes.Buffer
		assert.NoError(t, satInstance.WriteDIMACS(&buffer))
		assert.Equal(t, satInstance.ToDIMACS(), buffer.String())
	})

	t.Run("Writer error flow", func(t *testing.T) {
		assert.Error(t, satInstance.WriteDIMACS(failingWriter{}))
	})
}

func TestAssertSATSolution(t *testing.T) {
	satInstance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, 2}, {-1, -2}, {3}},
	}

	assert.True(t, AssertSATSolution(satInstance, SATSolution{1, -2, 3}))
	assert.True(t, AssertSATSolution(satInstance, SATSolution{-1, 2, 3}))
	// Unsatisfied clause
	assert.False(t, AssertSATSolution(satInstance, SATSolution{1, 2, 3}))
	assert.False(t, AssertSATSolution(satInstance, SATSolution{1, -2, -3}))
	// Contradiction
	assert.False(t, AssertSATSolution(satInstance, SATSolution{1, -1, -2, 3}))
	// Duplicate
	assert.False(t, AssertSATSolution(satInstance, SATSolution{1, 1, -2, 3}))
}
