// Package topology describes the fixed shapes of Garam puzzles: the catalogue
// of named cells and the equation templates connecting them.
//
// A cycle is composed of 4 arithmetical statements:
//
//	a1 $ b1 = c1
//	$         $
//	a2        c2
//	=         =
//	a3        c3
//	a4 $ b4 = c4
//
// where $ is an operator and a3/c3 are the tens digits of two-digit results.
// A grid is made of 4 such cycles, linked horizontally by the "cross"
// equations c2$d2=e2 and c7$d7=e7 and vertically by b4$b5=b6 and f4$f5=f6;
// the cells on a boundary belong to both cycles.
//
// The topology is pure constant data; packages frontend and solver consume it
// but never mutate it.
package topology

import (
	"fmt"
)

// Shape identifies a puzzle topology.
type Shape uint8

const (
	UNKNOWN Shape = iota
	Cycle         // 10 cells, 4 equations ("mini-Garam")
	Grid          // 44 cells, 20 equations, four interlocked cycles
)

func (s Shape) String() string {
	switch s {
	case Cycle:
		return "cycle"
	case Grid:
		return "grid"
	default:
		return "unknown"
	}
}

// ParseShape returns the Shape named by s.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "cycle":
		return Cycle, nil
	case "grid":
		return Grid, nil
	default:
		return UNKNOWN, fmt.Errorf("unknown shape %q (expected \"cycle\" or \"grid\")", s)
	}
}

// Variable is a named cell. Leading marks the tens digit of a two-digit
// result, which cannot be 0.
type Variable struct {
	Name    string
	Leading bool
}

// Equation is a template A $ B = result, where the result is either the
// single cell Units (Tens == ""), or the two-digit value 10*Tens + Units.
// Operand order matters: for subtraction the statement reads A - B = result.
type Equation struct {
	A, B  string
	Tens  string
	Units string
}

// TwoDigit reports whether the equation's result spans two cells.
func (e Equation) TwoDigit() bool {
	return e.Tens != ""
}

// Names returns every cell name the equation references, operands first.
func (e Equation) Names() []string {
	if e.TwoDigit() {
		return []string{e.A, e.B, e.Tens, e.Units}
	}
	return []string{e.A, e.B, e.Units}
}

// cycleVariables lists the cells of a cycle in canonical (reading) order.
var cycleVariables = []Variable{
	{Name: "a1"}, {Name: "b1"}, {Name: "c1"},
	{Name: "a2"}, {Name: "c2"},
	{Name: "a3", Leading: true}, {Name: "c3", Leading: true},
	{Name: "a4"}, {Name: "b4"}, {Name: "c4"},
}

// cycleEquations is ordered to match the canonical operator order.
var cycleEquations = []Equation{
	{A: "a1", B: "b1", Units: "c1"},
	{A: "a1", B: "a2", Tens: "a3", Units: "a4"},
	{A: "c1", B: "c2", Tens: "c3", Units: "c4"},
	{A: "a4", B: "b4", Units: "c4"},
}

var gridVariables = []Variable{
	{Name: "a1"}, {Name: "b1"}, {Name: "c1"}, {Name: "e1"}, {Name: "f1"}, {Name: "g1"},
	{Name: "a2"}, {Name: "c2"}, {Name: "d2"}, {Name: "e2"}, {Name: "g2"},
	{Name: "a3", Leading: true}, {Name: "c3", Leading: true}, {Name: "e3", Leading: true}, {Name: "g3", Leading: true},
	{Name: "a4"}, {Name: "b4"}, {Name: "c4"}, {Name: "e4"}, {Name: "f4"}, {Name: "g4"},
	{Name: "b5"}, {Name: "f5"},
	{Name: "a6"}, {Name: "b6"}, {Name: "c6"}, {Name: "e6"}, {Name: "f6"}, {Name: "g6"},
	{Name: "a7"}, {Name: "c7"}, {Name: "d7"}, {Name: "e7"}, {Name: "g7"},
	{Name: "a8", Leading: true}, {Name: "c8", Leading: true}, {Name: "e8", Leading: true}, {Name: "g8", Leading: true},
	{Name: "a9"}, {Name: "b9"}, {Name: "c9"}, {Name: "e9"}, {Name: "f9"}, {Name: "g9"},
}

var gridEquations = []Equation{
	{A: "a1", B: "b1", Units: "c1"},
	{A: "e1", B: "f1", Units: "g1"},
	{A: "a1", B: "a2", Tens: "a3", Units: "a4"},
	{A: "c1", B: "c2", Tens: "c3", Units: "c4"},
	{A: "e1", B: "e2", Tens: "e3", Units: "e4"},
	{A: "g1", B: "g2", Tens: "g3", Units: "g4"},
	{A: "c2", B: "d2", Units: "e2"},
	{A: "a4", B: "b4", Units: "c4"},
	{A: "e4", B: "f4", Units: "g4"},
	{A: "b4", B: "b5", Units: "b6"},
	{A: "f4", B: "f5", Units: "f6"},
	{A: "a6", B: "b6", Units: "c6"},
	{A: "e6", B: "f6", Units: "g6"},
	{A: "a6", B: "a7", Tens: "a8", Units: "a9"},
	{A: "c6", B: "c7", Tens: "c8", Units: "c9"},
	{A: "e6", B: "e7", Tens: "e8", Units: "e9"},
	{A: "g6", B: "g7", Tens: "g8", Units: "g9"},
	{A: "c7", B: "d7", Units: "e7"},
	{A: "a9", B: "b9", Units: "c9"},
	{A: "e9", B: "f9", Units: "g9"},
}

// Variables returns the ordered cell catalogue of the shape: 10 entries for a
// cycle, 44 for a grid. Clue lists and solutions follow this order.
func (s Shape) Variables() []Variable {
	var catalogue []Variable
	switch s {
	case Cycle:
		catalogue = cycleVariables
	case Grid:
		catalogue = gridVariables
	default:
		panic("topology: Variables called on unknown shape")
	}
	r := make([]Variable, len(catalogue))
	copy(r, catalogue)
	return r
}

// Equations returns the ordered equation templates of the shape: 4 entries
// for a cycle, 20 for a grid. Operator lists follow this order.
func (s Shape) Equations() []Equation {
	var templates []Equation
	switch s {
	case Cycle:
		templates = cycleEquations
	case Grid:
		templates = gridEquations
	default:
		panic("topology: Equations called on unknown shape")
	}
	r := make([]Equation, len(templates))
	copy(r, templates)
	return r
}

// NbVariables returns the number of cells of the shape.
func (s Shape) NbVariables() int {
	if s == Cycle {
		return len(cycleVariables)
	}
	return len(gridVariables)
}

// NbEquations returns the number of equations of the shape.
func (s Shape) NbEquations() int {
	if s == Cycle {
		return len(cycleEquations)
	}
	return len(gridEquations)
}

func init() {
	// an equation referencing a cell absent from the catalogue is a
	// programming error, not a recoverable condition
	check := func(variables []Variable, equations []Equation) {
		names := make(map[string]struct{}, len(variables))
		for _, v := range variables {
			names[v.Name] = struct{}{}
		}
		if len(names) != len(variables) {
			panic("topology: duplicate cell name in catalogue")
		}
		for _, e := range equations {
			seen := make(map[string]struct{}, 4)
			for _, n := range e.Names() {
				if _, ok := names[n]; !ok {
					panic(fmt.Sprintf("topology: equation references unknown cell %q", n))
				}
				if _, dup := seen[n]; dup {
					panic(fmt.Sprintf("topology: equation references cell %q twice", n))
				}
				seen[n] = struct{}{}
			}
		}
	}
	check(cycleVariables, cycleEquations)
	check(gridVariables, gridEquations)
}
