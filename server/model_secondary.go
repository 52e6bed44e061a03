package server

import (
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/zmolik/kpaths/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SESSION_READY ResponseCode = iota
	SESSION_INVALID
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SESSION_READY:
		return HTTP_SUCCESS
	case SESSION_INVALID:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (ss SearchSessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "SS_NEW"
	case SS_PLAY:
		return "SS_PLAY"
	case SS_ERR:
		return "SS_ERR"
	case SS_OVER:
		return "SS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}

func (cs ClientSessionState) Name() string {
	switch cs {
	case CS_NEW:
		return "NEW"
	case CS_PLAY:
		return "PLAY"
	case CS_OVER:
		return "OVER"
	case CS_ERR:
		return "ERR"
	default:
		return "N/A"
	}
}

type SessionContextAwaiting struct {
	ResponseCode  ResponseCode
	SearchSession *SearchSession
}

type SessionRequest struct {
	SessionContextAwaiting chan SessionContextAwaiting
}

type ClientConnectRequest struct {
	Con  *websocket.Conn
	Done chan struct{}
}

type ClientEvent struct {
	Message model.ClientMessage
}
