package main

import (
	"os"
	"strings"
	"testing"

	"github.com/limaJavier/tripartite/pkg/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInstance(triples [][3]int64) matching.Instance {
	return matching.Instance{
		A:       matching.NewSet[int64](1, 2, 3),
		B:       matching.NewSet[int64](4, 5, 6),
		C:       matching.NewSet[int64](7, 8, 9),
		Triples: triples,
	}
}

func TestWriteDIMACS(t *testing.T) {
	instance := referenceInstance([][3]int64{{1, 5, 9}, {1, 5, 6}, {1, 4, 7}, {2, 6, 9}, {2, 5, 8}, {3, 4, 7}, {3, 6, 9}, {3, 5, 9}})

	t.Run("Correct flow", func(t *testing.T) {
		//** Arrange
		path := t.TempDir() + "/instance.cnf"

		//** Act
		satInstance, family, err := writeDIMACS(path, matching.DefaultPolicy, instance)

		//** Assert
		require.NoError(t, err)
		assert.Len(t, family, 8)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, satInstance.ToDIMACS(), string(content))
		assert.True(t, strings.HasPrefix(string(content), "p cnf 8 33\n"))
	})

	t.Run("Found matching satisfies the exported CNF", func(t *testing.T) {
		satInstance, family, err := writeDIMACS(t.TempDir()+"/instance.cnf", matching.DefaultPolicy, instance)
		require.NoError(t, err)

		found, err := matching.TripartiteMatching(instance.A, instance.B, instance.C, instance.Triples)
		require.NoError(t, err)

		assert.True(t, satisfiesCNF(satInstance, family, found))
		assert.False(t, satisfiesCNF(satInstance, family, found[:2]))
	})

	t.Run("Slot checking flow", func(t *testing.T) {
		strict := matching.ValidationPolicy{Cardinality: matching.StrictCardinality, EnforceSlots: true}

		_, _, err := writeDIMACS(t.TempDir()+"/instance.cnf", strict, instance)

		assert.True(t, matching.ErrSlotMismatch.Is(err))
	})

	t.Run("Unwritable path flow", func(t *testing.T) {
		_, _, err := writeDIMACS(t.TempDir()+"/missing/instance.cnf", matching.DefaultPolicy, instance)

		assert.ErrorContains(t, err, "cannot create DIMACS file")
	})
}
