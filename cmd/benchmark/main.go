package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/tripartite/pkg/matching"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	outputFile = "benchmark_results.csv"
	seed       = 2024
	repetition = 3
)

type ResultType int

const (
	found ResultType = iota
	notFound
	invalid
)

var resultTypes = map[ResultType]string{
	found:    "found",
	notFound: "not-found",
	invalid:  "invalid",
}

type TestMetadata struct {
	Name    string
	K       int
	Noise   int
	Triples int
}

type BenchmarkResult struct {
	Test        TestMetadata
	Duration    time.Duration
	Feasible    bool
	MatchingLen int
	Result      ResultType
}

func main() {
	rng := rand.New(rand.NewPCG(seed, seed))
	tests := getTests()
	results := make([]BenchmarkResult, 0, len(tests)*repetition)

	for _, test := range tests {
		for run := range repetition {
			instance := matching.GenerateInstance(test.K, test.Noise, rng)
			test.Name = fmt.Sprintf("k%v-noise%v-run%v", test.K, test.Noise, run)
			test.Triples = len(instance.Triples)

			logrus.WithFields(logrus.Fields{
				"test":    test.Name,
				"triples": test.Triples,
			}).Info("benchmarking")

			results = append(results, measure(test, instance))
		}
	}

	if err := toCsv(outputFile, results); err != nil {
		logrus.Fatal(err)
	}
}

// Every (k, noise) pair keeps the family within 20 triples
func getTests() []TestMetadata {
	return lo.Map(
		lo.Zip2([]int{2, 3, 4, 5, 6, 7}, []int{4, 8, 12, 14, 13, 12}),
		func(tuple lo.Tuple2[int, int], _ int) TestMetadata {
			return TestMetadata{K: tuple.A, Noise: tuple.B}
		},
	)
}

func measure(test TestMetadata, instance matching.Instance) BenchmarkResult {
	result := BenchmarkResult{Test: test}

	report, err := matching.Project(instance.A, instance.B, instance.C, instance.Triples)
	if err != nil {
		result.Result = invalid
		return result
	}
	result.Feasible = report.Feasible()

	start := time.Now()
	matched, err := matching.TripartiteMatching(instance.A, instance.B, instance.C, instance.Triples)
	result.Duration = time.Since(start)

	switch {
	case err != nil:
		result.Result = invalid
	case len(matched) == 0:
		result.Result = notFound
	default:
		result.Result = found
		result.MatchingLen = len(matched)
	}
	return result
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.K),
		fmt.Sprintf("%d", result.Test.Noise),
		fmt.Sprintf("%d", result.Test.Triples),
		fmt.Sprintf("%v", result.Feasible),
		fmt.Sprintf("%d", result.MatchingLen),
		fmt.Sprintf("%.3f", float64(result.Duration.Microseconds())/1000),
		resultTypes[result.Result],
	}
}

func toCsv(path string, results []BenchmarkResult) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("cannot close CSV file: %w", closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	header := []string{"Test", "K", "Noise", "Triples", "Projection-Feasible", "Matching", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
