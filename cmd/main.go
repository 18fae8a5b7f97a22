package main

import (
	"fmt"
	"slices"

	"github.com/limaJavier/tripartite/pkg/matching"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type example struct {
	a, b, c matching.Set[int]
	triples [][3]int
}

var examples = []example{
	// expected matching: {1,4,7}, {2,5,8}, {3,6,9}
	{
		a:       matching.NewSet(1, 2, 3),
		b:       matching.NewSet(4, 5, 6),
		c:       matching.NewSet(7, 8, 9),
		triples: [][3]int{{1, 5, 9}, {1, 5, 6}, {1, 4, 7}, {2, 6, 9}, {2, 5, 8}, {3, 4, 7}, {3, 6, 9}, {3, 5, 9}},
	},
	// expected matching: {1,6,9}, {2,4,7}, {3,5,8}
	{
		a:       matching.NewSet(1, 2, 3),
		b:       matching.NewSet(4, 5, 6),
		c:       matching.NewSet(7, 8, 9),
		triples: [][3]int{{1, 6, 9}, {1, 4, 9}, {2, 4, 7}, {2, 4, 8}, {2, 6, 9}, {3, 5, 8}, {3, 5, 9}, {3, 5, 7}},
	},
	// expected matching: {1,8,13}, {2,6,11}, {3,7,15}, {4,10,12}, {5,9,14}
	{
		a: matching.NewSet(1, 2, 3, 4, 5),
		b: matching.NewSet(6, 7, 8, 9, 10),
		c: matching.NewSet(11, 12, 13, 14, 15),
		triples: [][3]int{
			{1, 8, 13}, {2, 6, 11}, {3, 7, 15}, {4, 10, 12}, {5, 9, 14},
			{1, 6, 11}, {1, 6, 12}, {1, 9, 14}, {2, 7, 13}, {2, 9, 13}, {3, 6, 15},
			{3, 9, 11}, {4, 6, 15}, {4, 7, 13}, {5, 6, 11}, {5, 10, 11},
		},
	},
}

func main() {
	for i, example := range examples {
		result, err := matching.TripartiteMatching(example.a, example.b, example.c, example.triples)
		if err != nil {
			logrus.Fatalf("example %v: %v", i+1, err)
		}

		fmt.Println(lo.Map(result, func(set matching.Set[int], _ int) []int {
			elements := set.Elements()
			slices.Sort(elements)
			return elements
		}))
	}
}
