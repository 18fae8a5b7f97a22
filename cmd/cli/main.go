package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/tripartite/pkg/matching"
	"github.com/limaJavier/tripartite/pkg/sat"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	exitFound        = 10
	exitNotFound     = 20
	exitVerification = 15
)

type output struct {
	Matching   [][]int64                  `json:"matching"`
	Projection *matching.ProjectionReport `json:"projection,omitempty"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the instance file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	configPathPtr := flag.String("config", "", "Path to an optional config.json file; flags override its values")
	cardinalityPtr := flag.String("cardinality", "strict", `Cardinality check applied to A, B and C. Allowed values are:
- "strict" (|A| = |B| = |C| is required) and
- "parity" (only rejects instances where all three sizes differ), where "strict" is the default`)
	slotsPtr := flag.Bool("slots", false, "Require every triple to take its elements from A, B and C respectively")
	dimacsPathPtr := flag.String("dimacs", "", "Path to a file where the exact-cover CNF of the instance will be written in DIMACS format")
	diagnosePtr := flag.Bool("diagnose", false, "Report the largest matching of each pair projection (A-B, A-C, B-C)")
	verbosePtr := flag.Bool("verbose", false, "Log search progress")
	flag.Parse()

	if *verbosePtr {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Resolve configuration
	config := matching.DefaultConfig()
	if *configPathPtr != "" {
		var err error
		if config, err = matching.ConfigFromJson(*configPathPtr); err != nil {
			logrus.Fatalf("cannot load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cardinality":
			config.Cardinality = strings.ToLower(*cardinalityPtr)
		case "slots":
			config.EnforceSlots = *slotsPtr
		}
	})
	policy, err := config.Policy()
	if err != nil {
		logrus.Fatal(err)
	}

	// Validate arguments
	if *filePathPtr == "" {
		logrus.Fatal("an instance file must be specified")
	}

	// Extract input
	instance, err := matching.InstanceFromJson(*filePathPtr)
	if err != nil {
		logrus.Fatalf("cannot parse instance file: %v", err)
	}
	if triples := len(lo.Uniq(instance.Triples)); triples > config.MaxTriples {
		logrus.Fatalf("the instance holds %v distinct triples, exhaustive search is limited to %v", triples, config.MaxTriples)
	}

	// Export CNF
	var (
		satInstance sat.SAT
		family      []matching.Set[int64]
	)
	if *dimacsPathPtr != "" {
		if satInstance, family, err = writeDIMACS(*dimacsPathPtr, policy, instance); err != nil {
			logrus.Fatalf("an error occurred while exporting the CNF: %v", err)
		}
	}

	result := output{}
	if *diagnosePtr {
		report, err := matching.Project(instance.A, instance.B, instance.C, instance.Triples)
		if err != nil {
			logrus.Fatalf("an error occurred while projecting the instance: %v", err)
		}
		result.Projection = &report
	}

	// Search matching
	matcher := matching.NewExhaustiveMatcher[int64](policy)
	found, err := matcher.Match(instance.A, instance.B, instance.C, instance.Triples)
	if err != nil {
		logrus.Fatalf("an error occurred during the search: %v", err)
	}

	// Verify matching correctness
	if len(found) > 0 && !matcher.Verify(found, instance.A, instance.B, instance.C, instance.Triples) {
		logrus.Error("verification failed")
		os.Exit(exitVerification)
	}

	// Cross-check the matching against the exported CNF
	if *dimacsPathPtr != "" && len(found) > 0 && !satisfiesCNF(satInstance, family, found) {
		logrus.WithField("dimacs", *dimacsPathPtr).Warn("the matching does not cover every element exactly once, the exported CNF is unsatisfied by it")
	}

	result.Matching = lo.Map(found, func(set matching.Set[int64], _ int) []int64 {
		elements := set.Elements()
		slices.Sort(elements)
		return elements
	})

	// Marshal output into json
	resultJson, err := json.Marshal(result)
	if err != nil {
		logrus.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if *outFilePathPtr == "" {
		fmt.Println(string(resultJson))
	} else if err := os.WriteFile(*outFilePathPtr, resultJson, 0666); err != nil {
		logrus.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	if len(found) == 0 {
		os.Exit(exitNotFound)
	}
	os.Exit(exitFound)
}

func writeDIMACS(path string, policy matching.ValidationPolicy, instance matching.Instance) (satInstance sat.SAT, family []matching.Set[int64], err error) {
	satInstance, family, err = matching.EncodeMatchingSAT(policy, instance.A, instance.B, instance.C, instance.Triples)
	if err != nil {
		return sat.SAT{}, nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return sat.SAT{}, nil, fmt.Errorf("cannot create DIMACS file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("cannot close DIMACS file: %w", closeErr)
		}
	}()

	if err := satInstance.WriteDIMACS(file); err != nil {
		return sat.SAT{}, nil, fmt.Errorf("cannot write DIMACS file: %w", err)
	}
	return satInstance, family, nil
}

func satisfiesCNF(satInstance sat.SAT, family []matching.Set[int64], found []matching.Set[int64]) bool {
	return sat.AssertSATSolution(satInstance, matching.EncodeSATSolution(found, family))
}
