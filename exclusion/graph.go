package exclusion

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/vsudoku/handler"
)

// Graph is the precomputed mutual-exclusion relation between cells,
// plus the pair/tuple intersection caches handlers populate during
// Initialize.
type Graph struct {
	numCells   int
	exclusions [][]int // sorted, per cell

	mu       sync.Mutex
	pairs    map[pairKey][]int
	tuples   map[string][]int
}

type pairKey struct{ a, b int }

// NewGraph builds the exclusion graph for numCells cells from the
// handler set hs: for every handler, every cell in Cells() gains the
// handler's ExclusionCells() (minus itself) as mutually-exclusive
// peers.
func NewGraph(numCells int, hs []handler.Handler) *Graph {
	sets := make([]map[int]struct{}, numCells)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for _, h := range hs {
		excl := h.ExclusionCells()
		for _, c := range h.Cells() {
			if c < 0 || c >= numCells {
				continue
			}
			for _, e := range excl {
				if e == c || e < 0 || e >= numCells {
					continue
				}
				sets[c][e] = struct{}{}
			}
		}
	}
	exclusions := make([][]int, numCells)
	for c, set := range sets {
		list := make([]int, 0, len(set))
		for e := range set {
			list = append(list, e)
		}
		sort.Ints(list)
		exclusions[c] = list
	}
	return &Graph{
		numCells:   numCells,
		exclusions: exclusions,
		pairs:      make(map[pairKey][]int),
		tuples:     make(map[string][]int),
	}
}

// Exclusions returns the sorted cell indices that must differ from c.
func (g *Graph) Exclusions(c int) []int {
	return g.exclusions[c]
}

// CachePair returns the intersection of Exclusions(a) and
// Exclusions(b), computing and memoizing it on first call.
func (g *Graph) CachePair(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	key := pairKey{a, b}

	g.mu.Lock()
	defer g.mu.Unlock()
	if cached, ok := g.pairs[key]; ok {
		return cached
	}
	inter := intersectSorted(g.exclusions[a], g.exclusions[b])
	g.pairs[key] = inter
	return inter
}

// CacheTuple returns the intersection of Exclusions(c) across every c
// in cells, computing and memoizing it on first call.
func (g *Graph) CacheTuple(cells []int) []int {
	key := tupleKey(cells)

	g.mu.Lock()
	defer g.mu.Unlock()
	if cached, ok := g.tuples[key]; ok {
		return cached
	}
	if len(cells) == 0 {
		g.tuples[key] = nil
		return nil
	}
	inter := append([]int(nil), g.exclusions[cells[0]]...)
	for _, c := range cells[1:] {
		inter = intersectSorted(inter, g.exclusions[c])
		if len(inter) == 0 {
			break
		}
	}
	g.tuples[key] = inter
	return inter
}

func tupleKey(cells []int) string {
	sorted := append([]int(nil), cells...)
	sort.Ints(sorted)
	var b strings.Builder
	for i, c := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

func intersectSorted(a, b []int) []int {
	out := make([]int, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
