package model

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// CellKind classifies a cell independently of path consumption.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindWall
	KindStart
	KindEnd
)

// Cell carries the kind and, orthogonally, the rank of the path that
// consumed it. Rank 0 means not consumed.
type Cell struct {
	Kind CellKind
	Rank int
}

// WallFunc decides whether the cell at (x, y) is a wall.
type WallFunc func(x, y int) bool

// Grid is the board: Matrix[x][y], column-major like the rest of the code.
type Grid struct {
	Cols, Rows int
	Matrix     [][]Cell
	wall       WallFunc
}

// Path is an ordered source→sink walk. Cost is the edge count,
// len(Points)-1. Cost -1 means no path was found.
type Path struct {
	Points []Point
	Cost   int
}

// RankedPath pairs a found path with its 1-based discovery rank.
type RankedPath struct {
	Rank int
	Path Path
}
