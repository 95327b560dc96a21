// Package garam solves Garam arithmetic puzzles: digits 0-9 are assigned to
// named cells so that every statement "a op b = c" (or "a op b = cd" for
// two-digit results) holds, given some cells pre-filled as clues.
//
// Two puzzle shapes are supported:
//   - a single cycle ("mini-Garam"): 10 cells, 4 equations
//   - a full grid: four cycles sharing boundary cells, 44 cells, 20 equations
//
// The typical flow compiles user input into a constraint system, then solves
// it:
//
//	sys, err := frontend.Compile(topology.Cycle, clues, ops)
//	// handle err (invalid input)
//	sol, err := solver.Solve(sys)
//	if sol.Status == solver.StatusSolved {
//		// sol.Digits holds the full assignment, in the same order as clues
//	}
//
// Puzzles of this kind are published on https://www.garamgame.com.
package garam

import (
	"github.com/blang/semver/v4"

	"github.com/bclarenc/garam/topology"
)

var Version = semver.MustParse("0.1.0")

// Shapes returns the puzzle shapes supported by garam.
func Shapes() []topology.Shape {
	return []topology.Shape{
		topology.Cycle,
		topology.Grid,
	}
}
