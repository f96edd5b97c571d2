package world

import (
	"math"
	"slices"

	"github.com/udisondev/towerdefence/internal/model"
)

// DefaultCellSize is the side of one grid cell in scene units.
const DefaultCellSize = 128

type cellKey struct {
	x, y int
}

// Grid is a uniform spatial index of object indices, rebuilt every frame.
// Queries return indices in ascending order so callers keep insertion order.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]int
}

// NewGrid creates empty grid. Non-positive cellSize falls back to DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

// CellSize returns side of one cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Reset removes every entry; cell slices are reused.
func (g *Grid) Reset() {
	for k, v := range g.cells {
		g.cells[k] = v[:0]
	}
}

// Insert puts index into the cell containing pos.
func (g *Grid) Insert(index int, pos model.Vec) {
	k := g.cellOf(pos)
	g.cells[k] = append(g.cells[k], index)
}

// Near appends to dst, in ascending order, every index whose cell
// intersects the square of half-size radius around center. Callers do the
// exact distance check.
func (g *Grid) Near(center model.Vec, radius float64, dst []int) []int {
	lo := g.cellOf(center.Sub(model.V(radius, radius)))
	hi := g.cellOf(center.Add(model.V(radius, radius)))

	start := len(dst)
	span := (hi.x - lo.x + 1) * (hi.y - lo.y + 1)
	if span > len(g.cells) || span <= 0 {
		// Wide query: scanning populated cells is cheaper.
		for k, indices := range g.cells {
			if k.x >= lo.x && k.x <= hi.x && k.y >= lo.y && k.y <= hi.y {
				dst = append(dst, indices...)
			}
		}
	} else {
		for x := lo.x; x <= hi.x; x++ {
			for y := lo.y; y <= hi.y; y++ {
				dst = append(dst, g.cells[cellKey{x, y}]...)
			}
		}
	}

	slices.Sort(dst[start:])
	return dst
}

func (g *Grid) cellOf(p model.Vec) cellKey {
	return cellKey{
		x: clampCell(math.Floor(p.X() / g.cellSize)),
		y: clampCell(math.Floor(p.Y() / g.cellSize)),
	}
}

// clampCell keeps huge or non-finite coordinates inside int range.
func clampCell(v float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(v)
}
