package matching

import "fmt"

type Matcher[T comparable] interface {
	// Returns k = |A| pairwise-disjoint triples of m, an empty matching if none exists, or an error if the input is malformed
	Match(a, b, c Set[T], m [][3]T) ([]Set[T], error)

	// Checks whether matching is a valid answer for the given input
	Verify(matching []Set[T], a, b, c Set[T], m [][3]T) bool
}

type CardinalityCheck int

const (
	// |A| = |B| = |C| is required
	StrictCardinality CardinalityCheck = iota
	// Rejects the input only when |A|, |B| and |C| are pairwise distinct, so |A| = |B| != |C| passes
	ParityCardinality
)

func (check CardinalityCheck) String() string {
	switch check {
	case StrictCardinality:
		return "strict"
	case ParityCardinality:
		return "parity"
	default:
		return fmt.Sprintf("CardinalityCheck(%d)", int(check))
	}
}

func ParseCardinalityCheck(value string) (CardinalityCheck, error) {
	switch value {
	case "strict":
		return StrictCardinality, nil
	case "parity":
		return ParityCardinality, nil
	default:
		return 0, fmt.Errorf("unknown cardinality check \"%v\": allowed values are \"strict\" and \"parity\"", value)
	}
}

type ValidationPolicy struct {
	Cardinality CardinalityCheck
	// When set, every triple must take its first, second and third elements from A, B and C respectively
	EnforceSlots bool
}

var DefaultPolicy = ValidationPolicy{
	Cardinality:  StrictCardinality,
	EnforceSlots: false,
}

// Validate returns the first violated precondition of a matching problem, or nil
func Validate[T comparable](policy ValidationPolicy, a, b, c Set[T], m [][3]T) error {
	// Make sure A, B and C are pairwise disjoint
	if element, ok := firstCollision([]Set[T]{a, b, c}); ok {
		return ErrNotDisjoint.New(element)
	}

	if !policy.cardinalityHolds(a.Len(), b.Len(), c.Len()) {
		return ErrCardinalityMismatch.New(a.Len(), b.Len(), c.Len())
	}

	if policy.EnforceSlots {
		for i, triple := range m {
			if !a.Has(triple[0]) || !b.Has(triple[1]) || !c.Has(triple[2]) {
				return ErrSlotMismatch.New(i, triple)
			}
		}
	}

	return nil
}

func (policy ValidationPolicy) cardinalityHolds(sizeA, sizeB, sizeC int) bool {
	if policy.Cardinality == ParityCardinality {
		return sizeA == sizeB || sizeA == sizeC || sizeB == sizeC
	}
	return sizeA == sizeB && sizeB == sizeC
}

// TripartiteMatching solves the 3-dimensional matching problem by exhaustive search using DefaultPolicy.
func TripartiteMatching[T comparable](a, b, c Set[T], m [][3]T) ([]Set[T], error) {
	return NewExhaustiveMatcher[T](DefaultPolicy).Match(a, b, c, m)
}

func NewExhaustiveMatcher[T comparable](policy ValidationPolicy) Matcher[T] {
	return &exhaustiveMatcher[T]{
		policy: policy,
	}
}
