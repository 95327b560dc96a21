package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bclarenc/garam/frontend"
	"github.com/bclarenc/garam/internal/parse"
	"github.com/bclarenc/garam/internal/render"
	"github.com/bclarenc/garam/solver"
	"github.com/bclarenc/garam/topology"
)

var (
	flagMini    bool
	flagCells   string
	flagOps     string
	flagTimeout time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "solve a full grid, or a single cycle with --mini",
	Long: `Solve reads the puzzle as two token rows: the cells in reading order
(single digits, "_" for an unknown cell) and the operators in reading order
(one of + - *). The rows come from --cells and --ops, or from stdin when the
flags are not set. A grid has 44 cells and 20 operators, a cycle 10 and 4.`,
	Example: `  garam solve --mini --cells "_ 1 7 _ _ 1 3 _ 2 _" --ops "- + * -"
  garam solve < puzzle.txt`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVarP(&flagMini, "mini", "m", false, "solve a single cycle instead of a full grid")
	solveCmd.Flags().StringVar(&flagCells, "cells", "", "cell row (digits and unknown markers)")
	solveCmd.Flags().StringVar(&flagOps, "ops", "", "operator row")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "abort the search after this duration")
}

func runSolve(cmd *cobra.Command, args []string) error {
	shape := topology.Grid
	if flagMini {
		shape = topology.Cycle
	}

	cellRow, opRow, err := readRows()
	if err != nil {
		return err
	}

	clues, err := parse.Clues(parse.Tokens(cellRow))
	if err != nil {
		return err
	}
	ops, err := parse.Operators(parse.Tokens(opRow))
	if err != nil {
		return err
	}

	sys, err := frontend.Compile(shape, clues, ops)
	if err != nil {
		return err
	}

	var opts []solver.Option
	if flagTimeout > 0 {
		opts = append(opts, solver.WithDeadline(time.Now().Add(flagTimeout)))
	}
	sol, err := solver.Solve(sys, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch sol.Status {
	case solver.StatusSolved:
		fmt.Fprintln(out)
		fmt.Fprint(out, render.SideBySide(shape, clues, sol.Digits, ops))
	case solver.StatusTimeout:
		fmt.Fprintln(out, "search aborted (timeout)")
		fmt.Fprintln(out)
		fmt.Fprint(out, render.Puzzle(shape, render.Clues(clues), ops))
	default:
		fmt.Fprintln(out, "no solution found")
		fmt.Fprintln(out)
		fmt.Fprint(out, render.Puzzle(shape, render.Clues(clues), ops))
	}
	return nil
}

// readRows returns the cell and operator rows, from the flags when set, from
// stdin otherwise.
func readRows() (string, string, error) {
	if flagCells != "" && flagOps != "" {
		return flagCells, flagOps, nil
	}
	if flagCells != "" || flagOps != "" {
		return "", "", fmt.Errorf("--cells and --ops must be given together")
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, "cells> ")
	if !sc.Scan() {
		return "", "", scanErr(sc, "missing cell row")
	}
	cells := sc.Text()
	fmt.Fprint(os.Stderr, "ops> ")
	if !sc.Scan() {
		return "", "", scanErr(sc, "missing operator row")
	}
	return cells, sc.Text(), nil
}

func scanErr(sc *bufio.Scanner, msg string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s", msg)
}
