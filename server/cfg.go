package server

import (
	"math/rand"
	"time"

	"github.com/zmolik/kpaths/model"
	"github.com/zmolik/kpaths/search"
)

// Config shapes the board every new session gets.
type Config struct {
	Cols, Rows  int
	MaxPaths    int
	WallDensity float64
	Seed        int64 // 0 means seed from the clock
}

func DefaultConfig() Config {
	return Config{
		Cols:        20,
		Rows:        15,
		MaxPaths:    5,
		WallDensity: 0.25,
	}
}

// NewSession rolls a fresh board for one client.
func (c Config) NewSession() *search.Session {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	grid := model.NewGrid(c.Cols, c.Rows, model.RandomWalls(c.WallDensity, rnd))
	return search.NewSession(grid, c.MaxPaths)
}
