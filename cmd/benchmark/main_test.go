package main

import (
	"encoding/csv"
	"os"
	"testing"
	"time"

	"github.com/limaJavier/tripartite/pkg/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Test:        TestMetadata{Name: "k3-noise4-run0", K: 3, Noise: 4, Triples: 7},
		Duration:    1500 * time.Microsecond,
		Feasible:    true,
		MatchingLen: 3,
		Result:      found,
	}

	assert.Equal(t, []string{"k3-noise4-run0", "3", "4", "7", "true", "3", "1.500", "found"}, toRecord(result))
}

func TestMeasure(t *testing.T) {
	//** Arrange
	a, b, c := matching.NewSet[int64](1, 2), matching.NewSet[int64](3, 4), matching.NewSet[int64](5, 6)
	test := TestMetadata{Name: "handmade", K: 2}

	//** Act
	solvable := measure(test, matching.Instance{A: a, B: b, C: c, Triples: [][3]int64{{1, 3, 5}, {2, 4, 6}}})
	unsolvable := measure(test, matching.Instance{A: a, B: b, C: c, Triples: [][3]int64{{1, 3, 5}, {2, 3, 6}}})
	malformed := measure(test, matching.Instance{A: a, B: a, C: c})

	//** Assert
	assert.Equal(t, found, solvable.Result)
	assert.Equal(t, 2, solvable.MatchingLen)
	assert.True(t, solvable.Feasible)
	assert.Equal(t, notFound, unsolvable.Result)
	assert.False(t, unsolvable.Feasible)
	assert.Equal(t, invalid, malformed.Result)
}

func TestToCsv(t *testing.T) {
	//** Arrange
	path := t.TempDir() + "/results.csv"
	results := []BenchmarkResult{{Test: TestMetadata{Name: "a"}}, {Test: TestMetadata{Name: "b"}, Result: notFound}}

	//** Act
	err := toCsv(path, results)
	require.NoError(t, err)

	//** Assert
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "not-found", records[2][7])
}

func TestGetTests(t *testing.T) {
	for _, test := range getTests() {
		assert.LessOrEqual(t, test.K+test.Noise, 20)
	}
}

func TestToCsvUnwritablePath(t *testing.T) {
	err := toCsv(t.TempDir()+"/missing/results.csv", nil)

	assert.ErrorContains(t, err, "cannot create CSV file")
}
