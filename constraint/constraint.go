// Package constraint holds the compiled form of a Garam puzzle: cell
// records with their digit domains, and equations with a concrete operator
// bound to resolved cell indices. A System is produced by frontend.Compile
// and consumed by solver.Solve.
package constraint

import (
	"fmt"
	"strings"

	"github.com/bclarenc/garam/topology"
)

// Operator is one of the three arithmetic operators a Garam equation can
// carry.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// ParseOperator returns the Operator for one of the symbols "+", "-", "*".
func ParseOperator(s string) (Operator, error) {
	switch strings.TrimSpace(s) {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*":
		return Mul, nil
	default:
		return 0, fmt.Errorf("unknown operator %q (expected \"+\", \"-\" or \"*\")", s)
	}
}

// Eval applies the operator to two digit values. Subtraction is never
// symmetrized: Sub.Eval(a, b) is a-b, which may be negative.
func (o Operator) Eval(a, b int) int {
	switch o {
	case Add:
		return a + b
	case Sub:
		return a - b
	default:
		return a * b
	}
}

// Clue is the knowledge state of a cell before solving: either a known digit
// or unknown. The zero value is unknown.
type Clue struct {
	Digit uint8
	Known bool
}

// KnownDigit returns a Clue fixing a cell to the given digit.
func KnownDigit(d uint8) Clue {
	return Clue{Digit: d, Known: true}
}

func (c Clue) String() string {
	if !c.Known {
		return "_"
	}
	return fmt.Sprintf("%d", c.Digit)
}

// Var is a compiled cell: its name, its digit bounds (inclusive) and its
// clue, if any. Lo is 1 for the tens digit of a two-digit result, 0
// otherwise.
type Var struct {
	Name   string
	Lo, Hi uint8
	Clue   Clue
}

// Equation binds an operator to cell indices in the parent System:
// A op B = result, where the result is either the single cell Units
// (Tens == -1) or the two-digit value 10*Tens + Units.
type Equation struct {
	Op    Operator
	A, B  int32
	Tens  int32 // -1 for single-digit results
	Units int32
}

// TwoDigit reports whether the equation's result spans two cells.
func (e Equation) TwoDigit() bool {
	return e.Tens >= 0
}

// Vars returns the indices of every cell the equation references, operands
// first.
func (e Equation) Vars() []int32 {
	if e.TwoDigit() {
		return []int32{e.A, e.B, e.Tens, e.Units}
	}
	return []int32{e.A, e.B, e.Units}
}

// Holds reports whether the equation is satisfied by the given full
// assignment, indexed like the parent System's Variables.
func (e Equation) Holds(digits []uint8) bool {
	lhs := e.Op.Eval(int(digits[e.A]), int(digits[e.B]))
	rhs := int(digits[e.Units])
	if e.TwoDigit() {
		rhs += 10 * int(digits[e.Tens])
	}
	return lhs == rhs
}

// System is a fully instantiated constraint set for one puzzle. It is built
// once per solve call and never shared.
type System struct {
	Shape     topology.Shape
	Variables []Var
	Equations []Equation
}

// Occurrences returns, for each cell index, the indices of the equations
// referencing it.
func (s *System) Occurrences() [][]int32 {
	occ := make([][]int32, len(s.Variables))
	for i, e := range s.Equations {
		for _, v := range e.Vars() {
			occ[v] = append(occ[v], int32(i))
		}
	}
	return occ
}

// FormatEquation renders an equation with its cell names, e.g. "a1 + a2 = a3a4".
func (s *System) FormatEquation(e Equation) string {
	var sbb strings.Builder
	sbb.WriteString(s.Variables[e.A].Name)
	sbb.WriteByte(' ')
	sbb.WriteString(e.Op.String())
	sbb.WriteByte(' ')
	sbb.WriteString(s.Variables[e.B].Name)
	sbb.WriteString(" = ")
	if e.TwoDigit() {
		sbb.WriteString(s.Variables[e.Tens].Name)
	}
	sbb.WriteString(s.Variables[e.Units].Name)
	return sbb.String()
}
