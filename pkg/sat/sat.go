package sat

import (
	"fmt"
	"io"
	"strings"
)

// SATSolution lists the literals of a model: positive literals are true variables, negative literals are false ones
type SATSolution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	// strings.Builder never fails to write
	_ = s.WriteDIMACS(&builder)
	return builder.String()
}

func (s SAT) WriteDIMACS(writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "p cnf %d %d\n", s.Variables, len(s.Clauses)); err != nil {
		return err
	}
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			if _, err := fmt.Fprintf(writer, "%d ", literal); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(writer, "0\n"); err != nil {
			return err
		}
	}
	return nil
}
