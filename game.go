package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/zmolik/kpaths/model"
	"github.com/zmolik/kpaths/search"
)

func init() {
	rand.Seed(time.Now().UnixNano())
	loadFont()
}

var Font font.Face

// optional label font; without the asset the debug print is used instead
func loadFont() {
	dat, err := ebitenutil.OpenFile("Teko-Light.ttf")
	if err != nil {
		log.Printf("no label font: %v", err)
		return
	}
	defer dat.Close()
	buf := new(bytes.Buffer)
	buf.ReadFrom(dat)
	tt, err := truetype.Parse(buf.Bytes())
	if err != nil {
		log.Printf("cant parse font: %v", err)
		return
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    28,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// StrokeSource represents an input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke tracks one press from start to release. A release that never
// drifted further than half a cell counts as a click.
type Stroke struct {
	source StrokeSource

	initX int
	initY int

	currentX int
	currentY int

	released bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

func (s *Stroke) PositionDiff() (int, int) {
	dx := s.currentX - s.initX
	dy := s.currentY - s.initY
	return dx, dy
}

func (s *Stroke) IsClick() bool {
	dx, dy := s.PositionDiff()
	return math.Abs(float64(dx)) < cellSize/2 && math.Abs(float64(dy)) < cellSize/2
}

type GameState int

const (
	IDLE GameState = iota + 1
	ANIMATING
	DONE
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ANIMATING:
		return "ANIMATING"
	case DONE:
		return "DONE"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State   GameState
	Session *search.Session
	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]Action

	paths     []model.RankedPath
	rankAlpha []float64
	CostLabel *ebiten.Image
}

var theGame *Game

func newGame() *Game {
	rnd := rand.New(rand.NewSource(rand.Int63()))
	grid := model.NewGrid(gridCols, gridRows, model.RandomWalls(wallDensity, rnd))
	return &Game{
		State:   IDLE,
		Session: search.NewSession(grid, maxPaths),
		strokes: map[*Stroke]struct{}{},
		Tweens:  make(map[*gween.Tween]Action),
	}
}

func (g *Game) reset(hard bool) {
	g.Session.Reset(hard)
	g.paths = nil
	g.rankAlpha = nil
	g.Tweens = make(map[*gween.Tween]Action)
	g.CostLabel = nil
	g.State = IDLE
	if hard {
		log.Printf("grid randomized and reset")
	} else {
		log.Printf("grid cleared for new pathfinding")
	}
}

func (g *Game) handleClick(px, py int) {
	p := model.Point{X: px / cellSize, Y: py / cellSize}
	switch g.Session.State {
	case search.AwaitStart:
		if err := g.Session.DesignateStart(p); err != nil {
			log.Printf("start refused at (%d,%d)", p.X, p.Y)
		}
	case search.AwaitEnd:
		paths, err := g.Session.DesignateEnd(p)
		if err != nil {
			log.Printf("end refused at (%d,%d)", p.X, p.Y)
			return
		}
		g.paths = paths
		g.CostLabel = prepareTextImage(costLine(paths))
		g.animatePaths()
	default:
		log.Printf("paths already found, press C or R to reset")
	}
}

func costLine(paths []model.RankedPath) string {
	if len(paths) == 0 {
		return "no path"
	}
	parts := make([]string, 0, len(paths))
	for _, rp := range paths {
		parts = append(parts, fmt.Sprintf("%d:%d", rp.Rank, rp.Path.Cost))
	}
	return "costs " + strings.Join(parts, "  ")
}

// animatePaths fades the ranks in one after another, chained tweens.
func (g *Game) animatePaths() {
	g.rankAlpha = make([]float64, len(g.paths))
	if len(g.paths) == 0 {
		g.State = DONE
		return
	}
	g.State = ANIMATING

	first := gween.New(0, 1, pathFade, ease.OutQuad)
	i := 0
	root := &Action{onChange: g.fadeRank(i)}
	cur := root
	for i = 1; i < len(g.paths); i++ {
		t := gween.New(0, 1, pathFade, ease.OutQuad)
		nxt := cur.next(t)
		nxt.onChange = g.fadeRank(i)
		cur = nxt
	}
	cur.addOnFinish(func() {
		g.State = DONE
	})
	g.Tweens[first] = *root
}

func (g *Game) fadeRank(i int) func(float32) {
	return func(v float32) {
		g.rankAlpha[i] = float64(v)
	}
}

func prepareTextImage(s string) *ebiten.Image {
	if Font == nil {
		return nil
	}
	image, _ := ebiten.NewImage(400, 60, ebiten.FilterLinear)
	text.Draw(image, s, Font, 5, 40, color.White)
	return image
}

func (g *Game) update(screen *ebiten.Image) error {
	// tween
	for t, a := range g.Tweens {
		curr, finished := t.Update(0.02)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.reset(false)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		s.Update()
		if s.IsReleased() {
			if s.IsClick() {
				x, y := s.Position()
				g.handleClick(x, y)
			}
			delete(g.strokes, s)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	screen.Fill(COLOR_LINE.At(1))
	for x := 0; x < g.Session.Grid.Cols; x++ {
		for y := 0; y < g.Session.Grid.Rows; y++ {
			cell := g.Session.Grid.Matrix[x][y]
			base := COLOR_EMPTY
			switch cell.Kind {
			case model.KindWall:
				base = COLOR_WALL
			case model.KindStart:
				base = COLOR_START
			case model.KindEnd:
				base = COLOR_END
			}
			cx := float64(x*cellSize) + 1
			cy := float64(y*cellSize) + 1
			ebitenutil.DrawRect(screen, cx, cy, cellSize-2, cellSize-2, base.At(1))
			if cell.Rank > 0 {
				alpha := 1.0
				if cell.Rank-1 < len(g.rankAlpha) {
					alpha = g.rankAlpha[cell.Rank-1]
				}
				ebitenutil.DrawRect(screen, cx, cy, cellSize-2, cellSize-2, rankColor(cell.Rank).At(alpha))
			}
		}
	}

	if g.CostLabel != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(8, 4)
		screen.DrawImage(g.CostLabel, op)
	} else if g.paths != nil {
		ebitenutil.DebugPrintAt(screen, costLine(g.paths), 8, 16)
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name()+" / "+g.Session.State.Name(), 8, 0)

	return nil
}

func main() {
	theGame = newGame()
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "K Disjoint Shortest Paths"); err != nil {
		log.Fatal(err)
	}
}
