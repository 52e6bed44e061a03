package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zmolik/kpaths/model"
)

func wallSet(ps ...model.Point) model.WallFunc {
	set := make(map[model.Point]struct{}, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return func(x, y int) bool {
		_, ok := set[model.Point{X: x, Y: y}]
		return ok
	}
}

func pt(x, y int) model.Point { return model.Point{X: x, Y: y} }

// requireChain checks the round-trip invariant: a contiguous 4-connected
// walk from source to sink with cost = len-1.
func requireChain(t *testing.T, p model.Path, source, sink model.Point) {
	t.Helper()
	require.NotEmpty(t, p.Points)
	require.Equal(t, source, p.Points[0])
	require.Equal(t, sink, p.Points[len(p.Points)-1])
	require.Equal(t, len(p.Points)-1, p.Cost)
	for i := 1; i < len(p.Points); i++ {
		dx := p.Points[i].X - p.Points[i-1].X
		dy := p.Points[i].Y - p.Points[i-1].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		require.Equal(t, 1, dx+dy, "step %d is not an axial unit move", i)
	}
}

func TestFindPathStraightLine(t *testing.T) {
	g := model.NewGrid(3, 1, nil)
	p := FindPath(g, pt(0, 0), pt(2, 0))

	require.Equal(t, 2, p.Cost)
	requireChain(t, p, pt(0, 0), pt(2, 0))
}

func TestFindPathDetoursAroundWall(t *testing.T) {
	g := model.NewGrid(3, 3, wallSet(pt(1, 0)))
	p := FindPath(g, pt(0, 0), pt(2, 0))

	require.Equal(t, 4, p.Cost)
	requireChain(t, p, pt(0, 0), pt(2, 0))
}

func TestFindPathSourceEqualsSink(t *testing.T) {
	g := model.NewGrid(3, 3, nil)
	p := FindPath(g, pt(1, 1), pt(1, 1))

	require.Equal(t, 0, p.Cost)
	require.Equal(t, []model.Point{pt(1, 1)}, p.Points)
}

func TestFindPathBlockedSourceFails(t *testing.T) {
	g := model.NewGrid(3, 3, wallSet(pt(0, 0)))
	require.Equal(t, -1, FindPath(g, pt(0, 0), pt(2, 2)).Cost)

	g = model.NewGrid(3, 3, nil)
	g.At(pt(0, 0)).Rank = 1
	require.Equal(t, -1, FindPath(g, pt(0, 0), pt(2, 2)).Cost)

	require.Equal(t, -1, FindPath(g, pt(-1, 0), pt(2, 2)).Cost)
}

func TestFindPathNoRoute(t *testing.T) {
	g := model.NewGrid(3, 3, wallSet(pt(1, 0), pt(1, 1), pt(1, 2)))
	p := FindPath(g, pt(0, 0), pt(2, 0))

	require.Equal(t, -1, p.Cost)
	require.Empty(t, p.Points)
}

func TestFindPathSinkException(t *testing.T) {
	// a consumed sink is still a legal terminal
	g := model.NewGrid(3, 1, nil)
	g.At(pt(2, 0)).Rank = 1
	p := FindPath(g, pt(0, 0), pt(2, 0))
	require.Equal(t, 2, p.Cost)
	requireChain(t, p, pt(0, 0), pt(2, 0))

	// even a walled sink is reachable, only the sink
	g = model.NewGrid(3, 1, wallSet(pt(2, 0)))
	p = FindPath(g, pt(0, 0), pt(2, 0))
	require.Equal(t, 2, p.Cost)
	requireChain(t, p, pt(0, 0), pt(2, 0))
}

func TestFindPathDoesNotMutateGrid(t *testing.T) {
	g := model.NewGrid(4, 4, wallSet(pt(2, 1)))
	before := make([]model.Cell, 0, 16)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			before = append(before, *g.At(pt(x, y)))
		}
	}

	FindPath(g, pt(0, 0), pt(3, 3))

	i := 0
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			require.Equal(t, before[i], *g.At(pt(x, y)))
			i++
		}
	}
}
