// Package render pretty-prints Garam puzzles for the terminal: the bare
// puzzle, or the initial and solved states side by side with ANSI
// highlighting.
package render

import (
	"strings"

	"github.com/bclarenc/garam/constraint"
	"github.com/bclarenc/garam/topology"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[91m"
	ansiYellow = "\033[93m"
)

// Templates consume one cell ('D') or operator ('O') token per placeholder,
// in reading order, which matches the canonical cell and equation orders.
const cycleTemplate = `D O D = D
O       O
D       D
=       =
D       D
D O D = D
`

const gridTemplate = `D O D = D       D O D = D
O       O       O       O
D       D O D = D       D
=       =       =       =
D       D       D       D
D O D = D       D O D = D
    O               O
    D               D
    =               =
D O D = D       D O D = D
O       O       O       O
D       D O D = D       D
=       =       =       =
D       D       D       D
D O D = D       D O D = D
`

// Clues renders clue list entries as cell tokens, "_" for unknown cells.
func Clues(clues []constraint.Clue) []string {
	cells := make([]string, len(clues))
	for i, c := range clues {
		cells[i] = c.String()
	}
	return cells
}

// Digits renders a solved digit list as cell tokens.
func Digits(digits []uint8) []string {
	cells := make([]string, len(digits))
	for i, d := range digits {
		cells[i] = string('0' + rune(d))
	}
	return cells
}

// Puzzle lays out a puzzle as a multiline string. cells and ops must have
// the canonical length for the shape; each entry must render as one
// character.
func Puzzle(shape topology.Shape, cells []string, ops []constraint.Operator) string {
	template := cycleTemplate
	if shape == topology.Grid {
		template = gridTemplate
	}

	var sbb strings.Builder
	ci, oi := 0, 0
	for _, r := range template {
		switch r {
		case 'D':
			sbb.WriteString(cells[ci])
			ci++
		case 'O':
			sbb.WriteString(ops[oi].String())
			oi++
		default:
			sbb.WriteRune(r)
		}
	}
	return sbb.String()
}

// colorize highlights structure: bold "=", red "_" (unsolved cells), yellow
// operators.
func colorize(s string) string {
	var sbb strings.Builder
	for _, r := range s {
		switch r {
		case '=':
			sbb.WriteString(ansiBold + "=" + ansiReset)
		case '_':
			sbb.WriteString(ansiRed + "_" + ansiReset)
		case '+', '-', '*':
			sbb.WriteString(ansiYellow + string(r) + ansiReset)
		default:
			sbb.WriteRune(r)
		}
	}
	return sbb.String()
}

// SideBySide lays out the initial puzzle and its solution next to each
// other, with a "Puzzle -> Solution" header and ANSI highlighting.
func SideBySide(shape topology.Shape, clues []constraint.Clue, digits []uint8, ops []constraint.Operator) string {
	left := Puzzle(shape, Clues(clues), ops)
	right := Puzzle(shape, Digits(digits), ops)

	leftLines := strings.Split(strings.TrimRight(left, "\n"), "\n")
	rightLines := strings.Split(strings.TrimRight(right, "\n"), "\n")

	width := 0
	for _, l := range leftLines {
		if len(l) > width {
			width = len(l)
		}
	}
	const gap = 9

	var sbb strings.Builder
	header := "Puzzle" + strings.Repeat(" ", width-len("Puzzle")+gap/2) + "->" + strings.Repeat(" ", gap/2) + "Solution"
	sbb.WriteString(header)
	sbb.WriteByte('\n')
	for i := range leftLines {
		row := leftLines[i] + strings.Repeat(" ", width-len(leftLines[i])+gap) + rightLines[i]
		sbb.WriteString(colorize(row))
		sbb.WriteByte('\n')
	}
	return sbb.String()
}
