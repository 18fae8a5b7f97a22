package matching

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// GenerateInstance builds an instance over A = {1..k}, B = {k+1..2k} and C = {2k+1..3k} whose triples hold a planted perfect matching plus noise random triples.
// Duplicated noise triples are dropped, so the instance may hold fewer than k+noise triples.
func GenerateInstance(k, noise int, rng *rand.Rand) Instance {
	a, b, c := make([]int64, k), make([]int64, k), make([]int64, k)
	for i := range k {
		a[i], b[i], c[i] = int64(i+1), int64(k+i+1), int64(2*k+i+1)
	}

	// Planted matching
	permutationB, permutationC := rng.Perm(k), rng.Perm(k)
	triples := make([][3]int64, 0, k+noise)
	for i := range k {
		triples = append(triples, [3]int64{a[i], b[permutationB[i]], c[permutationC[i]]})
	}

	// Noise
	if k == 0 {
		noise = 0
	}
	for range noise {
		triples = append(triples, [3]int64{a[rng.IntN(k)], b[rng.IntN(k)], c[rng.IntN(k)]})
	}

	triples = lo.Uniq(triples)
	rng.Shuffle(len(triples), func(i, j int) {
		triples[i], triples[j] = triples[j], triples[i]
	})

	return Instance{
		A:       NewSet(a...),
		B:       NewSet(b...),
		C:       NewSet(c...),
		Triples: triples,
	}
}
