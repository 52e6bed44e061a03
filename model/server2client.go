package model

// ServerMessage batches everything the server has to tell the client
// after one event: board setup, designation echoes, found paths.
type ServerMessage struct {
	Setups       []Setup
	Designations []Designation
	Paths        []PathFound
}

type Setup struct {
	Cols, Rows int
	MaxPaths   int
	Walls      []Point
}

// Designation echoes a click: which endpoint it tried to place and
// whether the session accepted it.
type Designation struct {
	X, Y     int
	Kind     CellKind
	Accepted bool
}

type PathFound struct {
	Rank, Cost int
	Points     []Point
}

type ClientMessageType int

const (
	MSG_CLICK ClientMessageType = iota + 1
	MSG_RESET
)

// ClientMessage is what a client sends. Flat on purpose: gob drops
// zero-valued fields, so the always-nonzero Type is the discriminant.
type ClientMessage struct {
	Type ClientMessageType
	X, Y int  // clicked cell, MSG_CLICK only
	Hard bool // roll new walls too, MSG_RESET only
}
