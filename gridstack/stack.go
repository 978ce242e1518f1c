package gridstack

import (
	"errors"

	"github.com/katalvlaran/vsudoku/mask"
)

// ErrDepthOutOfRange is returned when a depth index exceeds the
// stack's configured capacity.
var ErrDepthOutOfRange = errors.New("gridstack: depth out of range")

// Stack is the contiguous buffer of (maxDepth+1) mask.Set frames, each
// numCells wide.
type Stack struct {
	numCells int
	buf      []mask.Set
}

// NewStack allocates a Stack able to hold maxDepth+1 frames of
// numCells cells each. Depth-0 is zero-valued (mask.Empty); callers
// populate it via At(0) before any search begins.
func NewStack(numCells, maxDepth int) *Stack {
	return &Stack{
		numCells: numCells,
		buf:      make([]mask.Set, numCells*(maxDepth+1)),
	}
}

// Depths returns the number of frames this Stack holds.
func (s *Stack) Depths() int {
	if s.numCells == 0 {
		return 0
	}
	return len(s.buf) / s.numCells
}

// At returns the live, mutable frame at depth d as a slice view into
// the backing buffer. It panics if d is out of range — the driver
// bounds d against Depths() once at Reset and never exceeds it.
func (s *Stack) At(d int) []mask.Set {
	start := d * s.numCells
	return s.buf[start : start+s.numCells]
}

// CheckDepth validates d against this Stack's capacity without
// touching the buffer, for callers that accept a depth from outside
// the driver's own bookkeeping.
func (s *Stack) CheckDepth(d int) error {
	if d < 0 || d >= s.Depths() {
		return ErrDepthOutOfRange
	}
	return nil
}

// CopyInto copies the contents of frame src into frame dst. It is the
// single-vector-copy push the driver uses when a branch is a guess.
func (s *Stack) CopyInto(src, dst int) {
	copy(s.At(dst), s.At(src))
}
