package model

import "math/rand"

// NewGrid builds a Cols x Rows board. wall may be nil for an open board;
// it is kept so a hard reset can roll fresh walls.
func NewGrid(cols, rows int, wall WallFunc) *Grid {
	matrix := make([][]Cell, 0, cols)
	for x := 0; x < cols; x++ {
		column := make([]Cell, rows)
		for y := 0; y < rows; y++ {
			if wall != nil && wall(x, y) {
				column[y].Kind = KindWall
			}
		}
		matrix = append(matrix, column)
	}
	return &Grid{Cols: cols, Rows: rows, Matrix: matrix, wall: wall}
}

// RandomWalls returns a WallFunc placing walls at the given density.
// The original board used density 0.25.
func RandomWalls(density float64, rnd *rand.Rand) WallFunc {
	return func(x, y int) bool {
		return rnd.Float64() < density
	}
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) *Cell {
	return &g.Matrix[p.X][p.Y]
}

// Open reports whether p can be entered by a search: not a wall and not
// consumed by an earlier path. The sink exception is the caller's business.
func (g *Grid) Open(p Point) bool {
	c := g.Matrix[p.X][p.Y]
	return c.Kind != KindWall && c.Rank == 0
}

// Reset clears ranks and endpoint designations. A soft reset keeps the
// walls, a hard reset rolls new ones from the grid's WallFunc.
func (g *Grid) Reset(hard bool) {
	for x := range g.Matrix {
		for y := range g.Matrix[x] {
			c := &g.Matrix[x][y]
			c.Rank = 0
			if hard {
				c.Kind = KindEmpty
				if g.wall != nil && g.wall(x, y) {
					c.Kind = KindWall
				}
			} else if c.Kind != KindWall {
				c.Kind = KindEmpty
			}
		}
	}
}

// Walls lists the wall coordinates, for the session setup message.
func (g *Grid) Walls() []Point {
	walls := make([]Point, 0)
	for x := range g.Matrix {
		for y := range g.Matrix[x] {
			if g.Matrix[x][y].Kind == KindWall {
				walls = append(walls, Point{X: x, Y: y})
			}
		}
	}
	return walls
}
