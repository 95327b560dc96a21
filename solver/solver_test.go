package solver

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/bclarenc/garam/constraint"
	"github.com/bclarenc/garam/frontend"
	"github.com/bclarenc/garam/internal/parse"
	"github.com/bclarenc/garam/topology"
)

func mustCompile(t *testing.T, shape topology.Shape, cellRow, opRow string) *constraint.System {
	t.Helper()
	clues, err := parse.Clues(parse.Tokens(cellRow))
	require.NoError(t, err)
	ops, err := parse.Operators(parse.Tokens(opRow))
	require.NoError(t, err)
	sys, err := frontend.Compile(shape, clues, ops)
	require.NoError(t, err)
	return sys
}

// assertSound checks the returned assignment against every compiled
// equation, the domain bounds, and the clues.
func assertSound(t *testing.T, sys *constraint.System, digits []uint8) {
	t.Helper()
	assert := require.New(t)
	assert.Len(digits, len(sys.Variables))
	for i, v := range sys.Variables {
		assert.GreaterOrEqual(digits[i], v.Lo, "cell %s below its lower bound", v.Name)
		assert.LessOrEqual(digits[i], v.Hi, "cell %s above its upper bound", v.Name)
		if v.Clue.Known {
			assert.Equal(v.Clue.Digit, digits[i], "cell %s does not match its clue", v.Name)
		}
	}
	for _, e := range sys.Equations {
		assert.True(e.Holds(digits), "equation %s does not hold", sys.FormatEquation(e))
	}
}

const (
	goldenCycleCells = "_ 1 7 _ _ 1 3 _ 2 _"
	goldenCycleOps   = "- + * -"
)

var goldenCycleSolution = []uint8{8, 1, 7, 9, 5, 1, 3, 7, 2, 5}

func TestGoldenCycle(t *testing.T) {
	assert := require.New(t)

	sys := mustCompile(t, topology.Cycle, goldenCycleCells, goldenCycleOps)
	sol, err := Solve(sys)
	assert.NoError(err)
	assert.Equal(StatusSolved, sol.Status)

	if diff := cmp.Diff(goldenCycleSolution, sol.Digits); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
	assertSound(t, sys, sol.Digits)

	// spot-check the first equation under the stated operand order
	assert.Equal(uint8(7), sol.Digits[0]-sol.Digits[1]) // a1 - b1 = c1
}

func TestGoldenGrid(t *testing.T) {
	assert := require.New(t)

	// 22 clues; every unknown cell is functionally forced from them, so
	// the solution is unique and any sound solver must return exactly it
	const cells = "8 1 _ 9 3 6 9 5 2 _ 4 _ 3 _ _ _ 2 _ _ 2 _ 3 5 3 _ _ 8 _ _ 7 8 6 _ 9 _ _ _ _ _ 6 _ _ 6 _"
	const ops = "- - + * + * + - - * + + - * + * + - + -"
	want := []uint8{
		8, 1, 7, 9, 3, 6,
		9, 5, 2, 7, 4,
		1, 3, 1, 2,
		7, 2, 5, 6, 2, 4,
		3, 5,
		3, 6, 9, 8, 7, 1,
		7, 8, 6, 2, 9,
		2, 1, 1, 1,
		1, 6, 7, 6, 6, 0,
	}

	sys := mustCompile(t, topology.Grid, cells, ops)
	sol, err := Solve(sys)
	assert.NoError(err)
	assert.Equal(StatusSolved, sol.Status)

	if diff := cmp.Diff(want, sol.Digits); diff != "" {
		t.Fatalf("solution mismatch (-want +got):\n%s", diff)
	}
	assertSound(t, sys, sol.Digits)
}

func TestUnsatisfiable(t *testing.T) {
	assert := require.New(t)

	// 9 + 9 = 1 cannot hold
	sys := mustCompile(t, topology.Cycle, "9 9 1 _ _ _ _ _ _ _", "+ + + +")
	sol, err := Solve(sys)
	assert.NoError(err)
	assert.Equal(StatusUnsatisfiable, sol.Status)
	assert.Nil(sol.Digits)
}

func TestZeroClueOnTensCell(t *testing.T) {
	assert := require.New(t)

	// a3 is the tens digit of a1+a2, so a 0 clue empties its domain
	sys := mustCompile(t, topology.Cycle, "_ _ _ _ _ 0 _ _ _ _", "+ + + +")
	sol, err := Solve(sys)
	assert.NoError(err)
	assert.Equal(StatusUnsatisfiable, sol.Status)
}

func TestIdempotence(t *testing.T) {
	assert := require.New(t)

	// a fully and consistently clued puzzle comes back unchanged
	sys := mustCompile(t, topology.Cycle, "8 1 7 9 5 1 3 7 2 5", goldenCycleOps)
	sol, err := Solve(sys)
	assert.NoError(err)
	assert.Equal(StatusSolved, sol.Status)
	assert.Equal(goldenCycleSolution, sol.Digits)
}

func TestDeterminism(t *testing.T) {
	assert := require.New(t)

	// under-constrained puzzle: several solutions exist, but two runs must
	// explore branches identically and return the same one
	first, err := Solve(mustCompile(t, topology.Cycle, "_ _ _ _ _ _ _ _ _ _", "+ + + +"))
	assert.NoError(err)
	assert.Equal(StatusSolved, first.Status)

	second, err := Solve(mustCompile(t, topology.Cycle, "_ _ _ _ _ _ _ _ _ _", "+ + + +"))
	assert.NoError(err)
	assert.Equal(first.Digits, second.Digits)

	sys := mustCompile(t, topology.Cycle, "_ _ _ _ _ _ _ _ _ _", "+ + + +")
	assertSound(t, sys, first.Digits)
}

func TestNodeLimit(t *testing.T) {
	assert := require.New(t)

	sys := mustCompile(t, topology.Grid,
		"_ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _",
		"+ + + + + + + + + + + + + + + + + + + +")
	sol, err := Solve(sys, WithNodeLimit(5))
	assert.NoError(err)
	assert.Equal(StatusTimeout, sol.Status)
	assert.Nil(sol.Digits)
}

func TestDeadline(t *testing.T) {
	assert := require.New(t)

	sys := mustCompile(t, topology.Cycle, "_ _ _ _ _ _ _ _ _ _", "+ + + +")
	sol, err := Solve(sys, WithDeadline(time.Now().Add(-time.Second)))
	assert.NoError(err)
	assert.Equal(StatusTimeout, sol.Status)
}

func TestSolveMisuse(t *testing.T) {
	assert := require.New(t)

	_, err := Solve(nil)
	assert.ErrorIs(err, ErrNilSystem)

	sys := mustCompile(t, topology.Cycle, "_ _ _ _ _ _ _ _ _ _", "+ + + +")
	_, err = Solve(sys, WithNodeLimit(0))
	assert.Error(err)
}

func TestStatusString(t *testing.T) {
	assert := require.New(t)

	assert.Equal("solved", StatusSolved.String())
	assert.Equal("unsatisfiable", StatusUnsatisfiable.String())
	assert.Equal("timeout", StatusTimeout.String())
	assert.Equal("unknown", Status(0).String())
}

func TestMaskedCluesProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("masking cells of a solvable puzzle keeps it solvable and sound", prop.ForAll(
		func(mask []bool) bool {
			clues := make([]constraint.Clue, len(goldenCycleSolution))
			for i, hidden := range mask {
				if !hidden {
					clues[i] = constraint.KnownDigit(goldenCycleSolution[i])
				}
			}
			ops, err := parse.Operators(parse.Tokens(goldenCycleOps))
			if err != nil {
				return false
			}
			sys, err := frontend.Compile(topology.Cycle, clues, ops)
			if err != nil {
				return false
			}
			sol, err := Solve(sys)
			if err != nil || sol.Status != StatusSolved {
				return false
			}
			for i, v := range sys.Variables {
				if sol.Digits[i] < v.Lo || sol.Digits[i] > v.Hi {
					return false
				}
				if v.Clue.Known && sol.Digits[i] != v.Clue.Digit {
					return false
				}
			}
			for _, e := range sys.Equations {
				if !e.Holds(sol.Digits) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(10, gen.Bool()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
