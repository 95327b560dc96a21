// Package frontend compiles user input (clues and operators) against a
// puzzle topology into a constraint.System ready for solving.
package frontend

import (
	"fmt"

	"github.com/bclarenc/garam/constraint"
	"github.com/bclarenc/garam/logger"
	"github.com/bclarenc/garam/topology"
)

// ValidationError reports malformed input rejected before any search starts.
type ValidationError struct {
	Field  string // "shape", "clues" or "operators"
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
}

// Compile binds a clue list and an operator list to the given topology and
// returns the instantiated constraint system.
//
// clues must align one-to-one with shape.Variables() and ops with
// shape.Equations(). Malformed input (wrong lengths, digit outside 0-9,
// operator outside {+,-,*}) is rejected with a *ValidationError; no other
// validation occurs here. In particular a clue contradicting the equations,
// or a 0 clue on a tens cell, compiles fine and is reported as unsatisfiable
// by the solver.
func Compile(shape topology.Shape, clues []constraint.Clue, ops []constraint.Operator) (*constraint.System, error) {
	if shape != topology.Cycle && shape != topology.Grid {
		return nil, &ValidationError{Field: "shape", Detail: fmt.Sprintf("unknown shape %d", shape)}
	}

	catalogue := shape.Variables()
	templates := shape.Equations()

	if len(clues) != len(catalogue) {
		return nil, &ValidationError{
			Field:  "clues",
			Detail: fmt.Sprintf("expected %d clues for shape %s, got %d", len(catalogue), shape, len(clues)),
		}
	}
	if len(ops) != len(templates) {
		return nil, &ValidationError{
			Field:  "operators",
			Detail: fmt.Sprintf("expected %d operators for shape %s, got %d", len(templates), shape, len(ops)),
		}
	}

	sys := &constraint.System{
		Shape:     shape,
		Variables: make([]constraint.Var, len(catalogue)),
		Equations: make([]constraint.Equation, len(templates)),
	}

	index := make(map[string]int32, len(catalogue))
	for i, v := range catalogue {
		if c := clues[i]; c.Known && c.Digit > 9 {
			return nil, &ValidationError{
				Field:  "clues",
				Detail: fmt.Sprintf("cell %s: digit %d out of range 0-9", v.Name, c.Digit),
			}
		}
		lo := uint8(0)
		if v.Leading {
			lo = 1
		}
		sys.Variables[i] = constraint.Var{Name: v.Name, Lo: lo, Hi: 9, Clue: clues[i]}
		index[v.Name] = int32(i)
	}

	for i, t := range templates {
		op := ops[i]
		if op > constraint.Mul {
			return nil, &ValidationError{
				Field:  "operators",
				Detail: fmt.Sprintf("equation %d: unknown operator %d", i, op),
			}
		}
		tens := int32(-1)
		if t.TwoDigit() {
			tens = index[t.Tens]
		}
		sys.Equations[i] = constraint.Equation{
			Op:    op,
			A:     index[t.A],
			B:     index[t.B],
			Tens:  tens,
			Units: index[t.Units],
		}
	}

	log := logger.For("frontend")
	log.Debug().Stringer("shape", shape).
		Int("nbVariables", len(sys.Variables)).
		Int("nbEquations", len(sys.Equations)).
		Msg("compiled puzzle")

	return sys, nil
}
