package classic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vsudoku/mask"
	"github.com/katalvlaran/vsudoku/shape"
)

// ParseGrid parses an 81-character clue string in row-major order
// ('1'-'9' for a given digit, '.' or '0' for a blank cell) into a
// Shape-indexed []mask.Set: given cells become singletons, blanks
// become the full candidate set.
func ParseGrid(sh *shape.Shape, s string) ([]mask.Set, error) {
	s = strings.TrimSpace(s)
	if len(s) != Size*Size {
		return nil, fmt.Errorf("classic: expected %d characters, got %d", Size*Size, len(s))
	}

	grid := make([]mask.Set, sh.NumCells())
	full := sh.FullSet()
	for i, ch := range s {
		switch {
		case ch == '.' || ch == '0':
			grid[i] = full
		case ch >= '1' && ch <= '9':
			grid[i] = mask.Bit(int(ch - '0'))
		default:
			return nil, fmt.Errorf("classic: invalid character %q at position %d", ch, i)
		}
	}
	return grid, nil
}

// FormatGrid renders a Shape-indexed []mask.Set back to an 81-character
// string: a singleton cell prints its digit, anything else (including
// an empty or still-undetermined cell) prints '.'.
func FormatGrid(grid []mask.Set) string {
	var b strings.Builder
	b.Grow(len(grid))
	for _, m := range grid {
		if m.IsSingleton() {
			b.WriteByte(byte('0' + m.Low()))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
