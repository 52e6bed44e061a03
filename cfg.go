package main

import "image/color"

const (
	cellSize    = 40
	gridCols    = 20
	gridRows    = 15
	maxPaths    = 5
	wallDensity = 0.25

	// seconds of fade-in per path rank
	pathFade = float32(0.45)
)

var screenWidth = gridCols * cellSize
var screenHeight = gridRows * cellSize

type GameColor struct {
	r float64
	g float64
	b float64
}

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

// At premultiplies the color with alpha for direct rect drawing.
func (c GameColor) At(alpha float64) color.Color {
	return color.RGBA{
		R: uint8(c.r * alpha * 255),
		G: uint8(c.g * alpha * 255),
		B: uint8(c.b * alpha * 255),
		A: uint8(alpha * 255),
	}
}

var COLOR_LINE = HexToF32(0x646464)
var COLOR_EMPTY = HexToF32(0xc8c8c8)
var COLOR_WALL = HexToF32(0x323232)
var COLOR_START = HexToF32(0x00ff00)
var COLOR_END = HexToF32(0xff0000)

// shortest path darkest, later ranks lighter
var PATH_COLORS = []GameColor{
	HexToF32(0x0288d1),
	HexToF32(0x29b6f6),
	HexToF32(0x81d4fa),
	HexToF32(0xb3e5fc),
	HexToF32(0xe0f7fa),
}

func rankColor(rank int) GameColor {
	i := rank - 1
	if i >= len(PATH_COLORS) {
		i = len(PATH_COLORS) - 1
	}
	return PATH_COLORS[i]
}
