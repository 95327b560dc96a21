// Package solver implements a finite-domain backtracking search over a
// compiled constraint.System.
//
// Each free cell owns a candidate set (a 10-bit set), narrowed by forward
// checking every time a cell becomes fixed. Branching always picks the free
// cell with the smallest domain (ties broken by canonical order) and tries
// its candidates in ascending order, so two runs on identical input explore
// identical branches and return the same solution when several exist. The
// engine never looks for alternate solutions.
//
// Unsatisfiability is an expected outcome, not an error: it is reported as a
// Status on the Solution, as is hitting an optional node or wall-clock
// cutoff.
package solver

import (
	"errors"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/bclarenc/garam/constraint"
	"github.com/bclarenc/garam/debug"
)

// Status is the outcome of a solve call.
type Status uint8

const (
	StatusSolved        Status = iota + 1 // a satisfying assignment was found
	StatusUnsatisfiable                   // the search space is exhausted
	StatusTimeout                         // a node or wall-clock cutoff was hit
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsatisfiable:
		return "unsatisfiable"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Stats reports how much work a solve call performed.
type Stats struct {
	Nodes    uint64 // tentative assignments explored
	Duration time.Duration
}

// Solution is the result of a solve call. Digits is the full assignment in
// the canonical cell order of the shape when Status is StatusSolved, and nil
// otherwise.
type Solution struct {
	Status Status
	Digits []uint8
	Stats  Stats
}

// ErrNilSystem is returned when Solve is called without a compiled system.
var ErrNilSystem = errors.New("nil constraint system")

const nbDigits = 10 // candidate values per cell: 0..9

// Solve searches for an assignment of digits to the system's cells
// satisfying every equation, honoring the clues. The returned error only
// concerns misuse (bad option, nil system); "no solution" is a Status, not
// an error.
func Solve(sys *constraint.System, opts ...Option) (Solution, error) {
	if sys == nil {
		return Solution{}, ErrNilSystem
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Solution{}, err
	}

	start := time.Now()
	in := newInstance(sys, &cfg)

	status := StatusUnsatisfiable
	if in.initDomains() {
		status = in.search()
	}

	sol := Solution{
		Status: status,
		Stats:  Stats{Nodes: in.nodes, Duration: time.Since(start)},
	}
	if status == StatusSolved {
		sol.Digits = in.decode()
	}

	cfg.Logger.Debug().Stringer("shape", sys.Shape).
		Stringer("status", status).
		Uint64("nodes", sol.Stats.Nodes).
		Dur("took", sol.Stats.Duration).
		Msg("solver done")

	return sol, nil
}

// edit records one reversible domain narrowing: the domain of cell v before
// the edit. Undoing restores the saved pointer; domains are never mutated in
// place once on the trail.
type edit struct {
	v     int32
	saved *bitset.BitSet
}

type instance struct {
	sys     *constraint.System
	occ     [][]int32        // cell index -> equations referencing it
	domains []*bitset.BitSet // one 10-bit candidate set per cell
	trail   []edit
	nodes   uint64
	cfg     *Config
}

func newInstance(sys *constraint.System, cfg *Config) *instance {
	for _, e := range sys.Equations {
		for _, v := range e.Vars() {
			// an equation referencing a cell outside the catalogue is a
			// programming invariant violation, not a solvable condition
			debug.Assert(v >= 0 && int(v) < len(sys.Variables), "equation references cell outside the system")
		}
	}
	return &instance{
		sys:     sys,
		occ:     sys.Occurrences(),
		domains: make([]*bitset.BitSet, len(sys.Variables)),
		cfg:     cfg,
	}
}

// initDomains seeds every cell's candidate set from its bounds and clue,
// then runs an initial round of propagation from the clue singletons.
// Returns false if some domain is already empty (contradictory clues).
func (in *instance) initDomains() bool {
	var queue []int32
	for i, v := range in.sys.Variables {
		d := bitset.New(nbDigits)
		if v.Clue.Known {
			if v.Clue.Digit >= v.Lo && v.Clue.Digit <= v.Hi {
				d.Set(uint(v.Clue.Digit))
			}
			// a clue outside the bounds (0 on a tens cell) leaves the
			// domain empty: unsatisfiable, not a validation error
		} else {
			for c := v.Lo; c <= v.Hi; c++ {
				d.Set(uint(c))
			}
		}
		if d.None() {
			return false
		}
		in.domains[i] = d
		if d.Count() == 1 {
			queue = append(queue, int32(i))
		}
	}
	return in.propagate(queue)
}

// value returns the digit of a fixed cell.
func (in *instance) value(v int32) int {
	d, _ := in.domains[v].NextSet(0)
	return int(d)
}

func (in *instance) fixed(v int32) bool {
	return in.domains[v].Count() == 1
}

// narrow intersects the domain of cell v with allowed, recording the old
// domain on the trail when something was pruned. It reports whether the
// domain stayed non-empty, and whether the cell just became fixed.
func (in *instance) narrow(v int32, allowed *bitset.BitSet) (alive, justFixed bool) {
	old := in.domains[v]
	next := old.Intersection(allowed)
	if next.Equal(old) {
		return true, false
	}
	in.trail = append(in.trail, edit{v: v, saved: old})
	in.domains[v] = next
	if next.None() {
		return false, false
	}
	return true, next.Count() == 1
}

// undoTo rolls the trail back to the given mark, restoring every domain
// narrowed since.
func (in *instance) undoTo(mark int) {
	for i := len(in.trail) - 1; i >= mark; i-- {
		in.domains[in.trail[i].v] = in.trail[i].saved
	}
	in.trail = in.trail[:mark]
}

// consistentWith reports whether equation e can hold when the free cell f
// takes the candidate value c and every other referenced cell keeps its
// fixed value. With f < 0 all cells must be fixed and the equation is
// evaluated exactly.
func (in *instance) consistentWith(e constraint.Equation, f int32, c int) bool {
	val := func(v int32) int {
		if v == f {
			return c
		}
		return in.value(v)
	}
	lhs := e.Op.Eval(val(e.A), val(e.B))
	rhs := val(e.Units)
	if e.TwoDigit() {
		rhs += 10 * val(e.Tens)
	}
	return lhs == rhs
}

// revise applies forward checking to one equation after some referenced cell
// became fixed. With exactly one free cell left, its candidates are filtered
// by direct evaluation of the equation (exact for all three operators,
// including the 10*tens+units reconstruction); with none, the equation is
// checked outright. Newly fixed cells are appended to the queue. Returns
// false on a wiped-out domain or a violated equation.
func (in *instance) revise(e constraint.Equation, queue *[]int32) bool {
	free := int32(-1)
	for _, v := range e.Vars() {
		if !in.fixed(v) {
			if free >= 0 {
				return true // two or more free cells: nothing to prune yet
			}
			free = v
		}
	}

	if free < 0 {
		return in.consistentWith(e, -1, 0)
	}

	allowed := bitset.New(nbDigits)
	d := in.domains[free]
	for c, ok := d.NextSet(0); ok; c, ok = d.NextSet(c + 1) {
		if in.consistentWith(e, free, int(c)) {
			allowed.Set(c)
		}
	}
	alive, justFixed := in.narrow(free, allowed)
	if !alive {
		return false
	}
	if justFixed {
		*queue = append(*queue, free)
	}
	return true
}

// propagate runs forward checking to fixpoint from the given queue of newly
// fixed cells. Returns false when the partial assignment is infeasible.
func (in *instance) propagate(queue []int32) bool {
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, ei := range in.occ[v] {
			if !in.revise(in.sys.Equations[ei], &queue) {
				return false
			}
		}
	}
	return true
}

// selectVar returns the free cell with the smallest domain, ties broken by
// canonical order, or -1 when every cell is fixed.
func (in *instance) selectVar() int32 {
	best := int32(-1)
	bestCount := uint(nbDigits + 1)
	for i := range in.domains {
		if c := in.domains[i].Count(); c > 1 && c < bestCount {
			best = int32(i)
			bestCount = c
		}
	}
	return best
}

func (in *instance) search() Status {
	v := in.selectVar()
	if v < 0 {
		// all cells fixed; the final verification pass re-checks every
		// equation under the complete assignment
		if in.verify() {
			return StatusSolved
		}
		return StatusUnsatisfiable
	}

	candidate := bitset.New(nbDigits)
	d := in.domains[v]
	for c, ok := d.NextSet(0); ok; c, ok = d.NextSet(c + 1) {
		in.nodes++
		if in.cfg.NodeLimit > 0 && in.nodes > in.cfg.NodeLimit {
			return StatusTimeout
		}
		if !in.cfg.Deadline.IsZero() && time.Now().After(in.cfg.Deadline) {
			return StatusTimeout
		}

		mark := len(in.trail)
		candidate.ClearAll().Set(c)
		if alive, _ := in.narrow(v, candidate); alive {
			if in.propagate([]int32{v}) {
				switch st := in.search(); st {
				case StatusSolved, StatusTimeout:
					return st
				}
			}
		}
		in.undoTo(mark)
	}
	return StatusUnsatisfiable
}

// verify evaluates every equation under the complete assignment.
func (in *instance) verify() bool {
	digits := in.decode()
	for _, e := range in.sys.Equations {
		if !e.Holds(digits) {
			return false
		}
	}
	return true
}

// decode projects the assignment back into the canonical ordered digit list.
func (in *instance) decode() []uint8 {
	digits := make([]uint8, len(in.domains))
	for i := range in.domains {
		digits[i] = uint8(in.value(int32(i)))
	}
	return digits
}
