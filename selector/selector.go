package selector

import (
	"math"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
)

// Candidate is one branch choice returned by Select.
type Candidate struct {
	Cell  int      // cell to assign
	Value mask.Set // value (singleton bit) to try first
	Count int      // number of sibling choices at this branch

	// House is true when this Candidate came from house-value
	// branching rather than cell branching.
	House      bool
	SecondCell int // valid iff House: the paired cell for the 2nd try
}

// Guide overrides the selector's own choice, used by step-mode when
// the caller supplies stepGuides[step].
type Guide struct {
	Cell  *int
	Value *int
}

// Selector chooses the next branch from the live grid and the shared
// backtrack-trigger histogram.
type Selector struct {
	sh *shape.Shape
	bt []int // shared with the owning search.Driver; never reallocated
}

// New builds a Selector over sh, sharing bt (owned by the caller, not
// copied or reallocated for the lifetime of a run).
func New(sh *shape.Shape, bt []int) *Selector {
	return &Selector{sh: sh, bt: bt}
}

// Select scans the grid for the best branch. complete is true when
// every cell already holds a singleton mask (nothing left to branch
// on). guide, if non-nil, overrides the chosen cell and/or value.
func (s *Selector) Select(grid []mask.Set, guide *Guide) (cand Candidate, complete bool) {
	best := -1
	bestScore := -1.0
	minPopCell := -1
	minPop := math.MaxInt32

	for c, m := range grid {
		if m.IsSingleton() {
			continue
		}
		pc := m.Popcount()
		if pc == 0 {
			// Domain wipeout reaching the selector (only possible right
			// after initialization-time propagation failed): report it
			// as an exhausted, zero-choice candidate so the caller's
			// normal dead-branch handling retires it.
			return Candidate{Cell: c, Count: 0}, false
		}
		if pc < minPop {
			minPop = pc
			minPopCell = c
		}
		score := float64(s.bt[c]) / float64(pc)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if best == -1 {
		return Candidate{}, true
	}
	if bestScore == 0 {
		best = minPopCell
	}

	cand = Candidate{Cell: best, Value: grid[best].LowBit(), Count: grid[best].Popcount()}

	if pc := grid[best].Popcount(); pc > 2 && s.bt[best] > 0 {
		if houseCand, ok := s.tryHouseValueBranch(grid, bestScore); ok {
			cand = houseCand
		}
	}

	if guide != nil {
		cand = s.applyGuide(grid, cand, guide)
	}

	return cand, false
}

// tryHouseValueBranch implements house-value branching: for every
// house whose undetermined member cells all meet the bt threshold, find a
// value occurring in exactly two of the house's undetermined cells and
// score it max(bt[a],bt[b])/2; return the best one if it beats
// cellScore.
func (s *Selector) tryHouseValueBranch(grid []mask.Set, cellScore float64) (Candidate, bool) {
	threshold := int(math.Ceil(cellScore * 2))
	bestScore := cellScore
	found := false
	var best Candidate

	for _, house := range s.sh.Houses() {
		if !houseMeetsThreshold(s.bt, grid, house, threshold) {
			continue
		}
		for v := 1; v <= s.sh.NumValues(); v++ {
			bit := mask.Bit(v)
			a, b := -1, -1
			multiple := false
			for _, c := range house {
				if grid[c].IsSingleton() {
					continue
				}
				if grid[c].Has(v) {
					switch {
					case a == -1:
						a = c
					case b == -1:
						b = c
					default:
						multiple = true
					}
				}
			}
			if multiple || a == -1 || b == -1 {
				continue
			}
			score := float64(maxInt(s.bt[a], s.bt[b])) / 2
			if score > bestScore {
				bestScore = score
				found = true
				best = Candidate{Cell: a, Value: bit, Count: 2, House: true, SecondCell: b}
			}
		}
	}
	return best, found
}

// houseMeetsThreshold checks the bt-threshold gate only against cells
// still undetermined: an already-fixed cell carries no branching
// signal and should not veto a house-value attempt on its peers.
func houseMeetsThreshold(bt []int, grid []mask.Set, house shape.House, threshold int) bool {
	for _, c := range house {
		if grid[c].IsSingleton() {
			continue
		}
		if bt[c] < threshold {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// applyGuide overrides cand per guide. Overriding the cell resets Count/Value from the
// current grid; overriding the value forces Count to 1 (the guide
// dictates a single outcome, no sibling to retry).
func (s *Selector) applyGuide(grid []mask.Set, cand Candidate, guide *Guide) Candidate {
	if guide.Cell != nil {
		c := *guide.Cell
		cand = Candidate{Cell: c, Value: grid[c].LowBit(), Count: grid[c].Popcount()}
	}
	if guide.Value != nil {
		cand.Value = mask.Bit(*guide.Value)
		cand.Count = 1
		cand.House = false
	}
	return cand
}
