package search

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zmolik/kpaths/model"
)

var (
	// ErrInvalidStart rejects a start designation: out of bounds, wall,
	// or start already placed. The grid is left untouched.
	ErrInvalidStart = errors.New("search: invalid start designation")
	// ErrInvalidEnd rejects an end designation: out of bounds, wall,
	// equal to start, or out of order.
	ErrInvalidEnd = errors.New("search: invalid end designation")
)

type SessionState int

const (
	AwaitStart SessionState = iota + 1
	AwaitEnd
	Done
)

func (s SessionState) Name() string {
	switch s {
	case AwaitStart:
		return "AWAIT_START"
	case AwaitEnd:
		return "AWAIT_END"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

// Session owns one grid and walks it through the designation state
// machine. The second designation triggers the whole disjoint-path run,
// synchronously; nothing else ever mutates the grid mid-search.
type Session struct {
	State    SessionState
	Grid     *model.Grid
	MaxPaths int

	Start, End model.Point
	Paths      []model.RankedPath
}

func NewSession(grid *model.Grid, maxPaths int) *Session {
	return &Session{
		State:    AwaitStart,
		Grid:     grid,
		MaxPaths: maxPaths,
	}
}

// DesignateStart places the start endpoint. Refused, with the state
// unchanged, when the point is out of bounds or a wall, or when the
// session is past AwaitStart.
func (s *Session) DesignateStart(p model.Point) error {
	if s.State != AwaitStart {
		return ErrInvalidStart
	}
	if !s.Grid.InBounds(p) || s.Grid.At(p).Kind == model.KindWall {
		return ErrInvalidStart
	}
	s.Grid.At(p).Kind = model.KindStart
	s.Start = p
	s.State = AwaitEnd
	log.Printf("start set at (%d,%d)", p.X, p.Y)
	return nil
}

// DesignateEnd places the end endpoint and immediately runs the full
// disjoint-path search. Refused when the point is out of bounds, a wall,
// equal to the start, or when the session is not awaiting an end.
// An empty result is a valid outcome, not an error.
func (s *Session) DesignateEnd(p model.Point) ([]model.RankedPath, error) {
	if s.State != AwaitEnd {
		return nil, ErrInvalidEnd
	}
	if !s.Grid.InBounds(p) || p == s.Start || s.Grid.At(p).Kind == model.KindWall {
		return nil, ErrInvalidEnd
	}
	s.Grid.At(p).Kind = model.KindEnd
	s.End = p
	s.State = Done
	log.Printf("end set at (%d,%d), searching %d paths", p.X, p.Y, s.MaxPaths)
	s.Paths = FindDisjoint(s.Grid, s.Start, s.End, s.MaxPaths)
	return s.Paths, nil
}

// Reset returns the session to AwaitStart. Soft keeps the walls, hard
// rolls new ones.
func (s *Session) Reset(hard bool) {
	s.Grid.Reset(hard)
	s.Paths = nil
	s.Start = model.Point{}
	s.End = model.Point{}
	s.State = AwaitStart
}
