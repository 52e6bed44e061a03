package search

import (
	"container/heap"
	"math"

	"github.com/zmolik/kpaths/model"
)

// up, right, down, left
var steps = [4]model.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

const unreached = math.MaxInt32

// frontierEntry is one tentative (cell, cost) candidate. Entries are never
// deduplicated; stale ones are skipped when popped.
type frontierEntry struct {
	pos  model.Point
	cost int
}

// frontier is a min-heap on tentative cost, the lazy decrease-key way:
// relaxing a cell pushes another entry instead of updating the old one.
type frontier []frontierEntry

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].cost < f[j].cost }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// FindPath runs one Dijkstra pass from source to sink over the grid with
// unit move costs and four axial neighbors. Cells that are walls or carry
// a rank are closed, with one exception: the sink is always a legal
// target, so later passes can still terminate at the shared endpoint.
//
// The grid is read-only here; only the orchestrator stamps ranks.
// A blocked source fails immediately. Failure is Path{Cost: -1}.
func FindPath(g *model.Grid, source, sink model.Point) model.Path {
	notFound := model.Path{Cost: -1}

	if !g.InBounds(source) || !g.Open(source) {
		return notFound
	}

	dist := make([][]int, g.Cols)
	parent := make([][]model.Point, g.Cols)
	visited := make([][]bool, g.Cols)
	for x := 0; x < g.Cols; x++ {
		dist[x] = make([]int, g.Rows)
		parent[x] = make([]model.Point, g.Rows)
		visited[x] = make([]bool, g.Rows)
		for y := 0; y < g.Rows; y++ {
			dist[x][y] = unreached
			parent[x][y] = model.Point{X: -1, Y: -1}
		}
	}

	pq := make(frontier, 0, g.Cols*g.Rows)
	heap.Init(&pq)
	heap.Push(&pq, frontierEntry{pos: source, cost: 0})
	dist[source.X][source.Y] = 0

	found := false
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(frontierEntry)
		if visited[cur.pos.X][cur.pos.Y] {
			// stale entry, a shorter one was popped earlier
			continue
		}
		visited[cur.pos.X][cur.pos.Y] = true

		if cur.pos == sink {
			found = true
			break
		}

		for _, d := range steps {
			n := model.Point{X: cur.pos.X + d.X, Y: cur.pos.Y + d.Y}
			if !g.InBounds(n) {
				continue
			}
			// the sink is always a valid target, even when walled or
			// consumed by a previous path
			if n != sink && !g.Open(n) {
				continue
			}
			if visited[n.X][n.Y] {
				continue
			}
			if newCost := dist[cur.pos.X][cur.pos.Y] + 1; newCost < dist[n.X][n.Y] {
				dist[n.X][n.Y] = newCost
				parent[n.X][n.Y] = cur.pos
				heap.Push(&pq, frontierEntry{pos: n, cost: newCost})
			}
		}
	}

	if !found {
		return notFound
	}

	points := make([]model.Point, 0, dist[sink.X][sink.Y]+1)
	for at := sink; ; at = parent[at.X][at.Y] {
		points = append(points, at)
		if at == source {
			break
		}
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return model.Path{Points: points, Cost: len(points) - 1}
}
