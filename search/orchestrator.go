package search

import (
	log "github.com/sirupsen/logrus"

	"github.com/zmolik/kpaths/model"
)

// FindDisjoint runs up to maxPaths sequential FindPath passes between the
// fixed endpoints. After each found path its interior cells are stamped
// with the 1-based rank, which blocks them for every later pass, so the
// returned paths never share interior cells. The loop stops early when a
// pass finds nothing; that is exhaustion, not an error. Greedy by design:
// early paths are not chosen to keep later ones possible, so fewer than
// maxPaths can come back even when more disjoint routes exist.
func FindDisjoint(g *model.Grid, source, sink model.Point, maxPaths int) []model.RankedPath {
	paths := make([]model.RankedPath, 0, maxPaths)
	for rank := 1; rank <= maxPaths; rank++ {
		p := FindPath(g, source, sink)
		if p.Cost == -1 {
			log.Printf("no more paths after %d", len(paths))
			break
		}
		log.Printf("path %d cost: %d", rank, p.Cost)
		for _, pt := range p.Points {
			if pt == source || pt == sink {
				continue
			}
			g.At(pt).Rank = rank
		}
		paths = append(paths, model.RankedPath{Rank: rank, Path: p})
	}
	return paths
}
