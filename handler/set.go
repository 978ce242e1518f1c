package handler

// Set is the derived-index view over a finished handler collection:
// per-cell slices of ordinary, auxiliary, and exclusion handler
// indices, plus the priority-override list and the static priority
// vector they seed.
type Set struct {
	Handlers []Handler

	// OrdinaryByCell[c] holds indices into Handlers of every handler
	// whose Cells() contains c (excluding exclusion enforcers).
	OrdinaryByCell [][]int

	// AuxByCell[c] holds indices into Handlers of every Auxiliary
	// handler whose AuxCells() contains c.
	AuxByCell [][]int

	// ExclusionByCell[c] is the index into Handlers of the single
	// ExclusionEnforcer built for c, or -1 if none was registered.
	ExclusionByCell []int

	// PriorityHandlers holds indices into Handlers of every
	// PriorityOverride handler, in registration order.
	PriorityHandlers []int
}

// NewSet partitions all (ordinary domain handlers plus, typically, one
// ExclusionEnforcer per cell appended by the caller) into the indices
// above. numCells sizes the per-cell slices.
func NewSet(all []Handler, numCells int) *Set {
	s := &Set{
		Handlers:        all,
		OrdinaryByCell:  make([][]int, numCells),
		AuxByCell:       make([][]int, numCells),
		ExclusionByCell: make([]int, numCells),
	}
	for c := range s.ExclusionByCell {
		s.ExclusionByCell[c] = -1
	}
	for i, h := range all {
		if ee, ok := h.(ExclusionEnforcer); ok {
			s.ExclusionByCell[ee.EnforcerCell()] = i
			continue
		}
		for _, c := range h.Cells() {
			s.OrdinaryByCell[c] = append(s.OrdinaryByCell[c], i)
		}
		if aux, ok := h.(Auxiliary); ok {
			for _, c := range aux.AuxCells() {
				s.AuxByCell[c] = append(s.AuxByCell[c], i)
			}
		}
		if _, ok := h.(PriorityOverride); ok {
			s.PriorityHandlers = append(s.PriorityHandlers, i)
		}
	}
	return s
}

// SeedPriorities builds the initial per-cell priority vector used to
// seed the backtrack-trigger histogram: initialized from a static
// cell-priority vector derived from handler priorities so the first
// descent has signal.
//
// Per-cell priority starts as the sum of Priority() over every
// ordinary handler touching that cell, then PriorityOverride handlers
// overwrite (not max-combine) their declared cells' priority, applied
// in registration order so the last-registered override wins. See
// DESIGN.md for why overwrite (not max-combine) was chosen.
func (s *Set) SeedPriorities(numCells int) []int {
	seed := make([]int, numCells)
	for c, idxs := range s.OrdinaryByCell {
		for _, i := range idxs {
			seed[c] += s.Handlers[i].Priority()
		}
	}
	for _, i := range s.PriorityHandlers {
		po := s.Handlers[i].(PriorityOverride)
		for c, v := range po.PriorityCells() {
			seed[c] = v
		}
	}
	return seed
}
