package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/zmolik/kpaths/model"
	"github.com/zmolik/kpaths/search"
)

type SearchServer struct {
	SearchSessions  []*SearchSession
	SessionRequests chan SessionRequest
	Upgrader        *websocket.Upgrader
	Cfg             Config
}

type SearchSessionState int

const (
	SS_NEW SearchSessionState = iota
	SS_PLAY
	SS_ERR
	SS_OVER
)

// SearchSession wraps one search.Session; its Loop goroutine is the only
// thing that ever touches the grid, so every K-pass run is atomic.
type SearchSession struct {
	State           SearchSessionState
	Session         *search.Session
	Client          *ClientSession
	Errors          chan struct{}
	Events          chan ClientEvent
	ConnectRequests chan ClientConnectRequest
}

type ClientSessionState int

const (
	CS_NEW ClientSessionState = iota + 1
	CS_PLAY
	CS_OVER
	CS_ERR
)

type ClientSession struct {
	State         ClientSessionState
	SearchSession *SearchSession
	Conn          *websocket.Conn
	Done          chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}
