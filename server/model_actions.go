package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zmolik/kpaths/model"
	"github.com/zmolik/kpaths/search"
)

func NewSearchServer(cfg Config) *SearchServer {
	return &SearchServer{
		SearchSessions:  make([]*SearchSession, 0),
		SessionRequests: make(chan SessionRequest),
		Upgrader:        &websocket.Upgrader{},
		Cfg:             cfg,
	}
}

// HandleHttpCall upgrades the request to a websocket, attaches the client
// to a fresh search session and blocks until that session is over.
func (s *SearchServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		scas := make(chan SessionContextAwaiting)
		select {
		case s.SessionRequests <- SessionRequest{SessionContextAwaiting: scas}:
		case <-time.After(timeout):
			log.Warn("SessionRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var sca SessionContextAwaiting
		select {
		case sca = <-scas:
			if sca.ResponseCode != SESSION_READY {
				w.WriteHeader(sca.ResponseCode.ToHttp())
				return
			}
			log.Printf("HandleHttpCall ok, have SearchSession")
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall SessionContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		done := make(chan struct{})
		select {
		case sca.SearchSession.ConnectRequests <- ClientConnectRequest{
			Con:  con,
			Done: done}:
		case <-time.After(timeout):
			return
		}

		// hold the handler until the session dies
		<-done
	}
}

func (s *SearchServer) Loop() {
	log.Printf("SearchServer.Loop starting")
	for {
		select {
		case req := <-s.SessionRequests:
			log.Printf("SearchServer.Loop session request, %d sessions so far", len(s.SearchSessions))
			ss := &SearchSession{
				State:           SS_NEW,
				Session:         s.Cfg.NewSession(),
				Errors:          make(chan struct{}, 1),
				Events:          make(chan ClientEvent, 8),
				ConnectRequests: make(chan ClientConnectRequest),
			}
			go ss.Loop()
			s.SearchSessions = append(s.SearchSessions, ss)

			req.SessionContextAwaiting <- SessionContextAwaiting{
				ResponseCode:  SESSION_READY,
				SearchSession: ss,
			}
		}
	}
}

func (ss *SearchSession) Loop() {
	log.Info("SearchSession.Loop start")
	for {
		select {
		case ccr := <-ss.ConnectRequests:
			log.Info("SearchSession.Loop ConnectRequests")
			ss.addClient(ccr.Con, ccr.Done)
			ss.State = SS_PLAY
			ss.Client.State = CS_PLAY
			ss.Client.MessagesToSend <- ss.makeSetupMessage()
		case <-ss.Errors:
			log.Warn("killing SearchSession")
			ss.State = SS_ERR
			if ss.Client != nil {
				ss.Client.State = CS_ERR
				close(ss.Client.Done)
			}
			return
		case ev := <-ss.Events:
			// the actual pathfinding happens here, one event at a time
			if msg := ss.Turn(ev); msg != nil {
				ss.Client.MessagesToSend <- *msg
			}
		}
	}
}

// Turn applies one client event to the session and builds the reply.
func (ss *SearchSession) Turn(ev ClientEvent) *model.ServerMessage {
	cm := ev.Message
	switch cm.Type {
	case model.MSG_CLICK:
		p := model.Point{X: cm.X, Y: cm.Y}
		switch ss.Session.State {
		case search.AwaitStart:
			err := ss.Session.DesignateStart(p)
			return &model.ServerMessage{Designations: []model.Designation{{
				X: p.X, Y: p.Y, Kind: model.KindStart, Accepted: err == nil}}}
		case search.AwaitEnd:
			paths, err := ss.Session.DesignateEnd(p)
			msg := &model.ServerMessage{Designations: []model.Designation{{
				X: p.X, Y: p.Y, Kind: model.KindEnd, Accepted: err == nil}}}
			if err != nil {
				return msg
			}
			msg.Paths = make([]model.PathFound, 0, len(paths))
			for _, rp := range paths {
				msg.Paths = append(msg.Paths, model.PathFound{
					Rank:   rp.Rank,
					Cost:   rp.Path.Cost,
					Points: rp.Path.Points,
				})
			}
			return msg
		default:
			log.Printf("click ignored, session %s, reset required", ss.Session.State.Name())
			return nil
		}
	case model.MSG_RESET:
		ss.Session.Reset(cm.Hard)
		log.Printf("session reset, hard=%v", cm.Hard)
		msg := ss.makeSetupMessage()
		return &msg
	}
	log.Warnf("unknown client message type %d", cm.Type)
	return nil
}

func (ss *SearchSession) makeSetupMessage() model.ServerMessage {
	return model.ServerMessage{
		Setups: []model.Setup{{
			Cols:     ss.Session.Grid.Cols,
			Rows:     ss.Session.Grid.Rows,
			MaxPaths: ss.Session.MaxPaths,
			Walls:    ss.Session.Grid.Walls(),
		}},
	}
}

func (ss *SearchSession) addClient(conn *websocket.Conn, done chan struct{}) {
	log.Printf("SearchSession.addClient")
	cs := &ClientSession{
		State:          CS_NEW,
		SearchSession:  ss,
		Conn:           conn,
		Done:           done,
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			cs.DebugLastPing = time.Now()
			cs.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	go cs.LoopChannelRead()
	go cs.LoopChannelWrite()
	ss.Client = cs
}

func (cs *ClientSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
loop:
	for {
		messageType, r, err := cs.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			cs.State = CS_ERR
			cs.SearchSession.Errors <- struct{}{}
			break loop
		}
		log.Printf("LoopChannelRead received message type: %d", messageType)
		dec := gob.NewDecoder(r)
		cm := &model.ClientMessage{}
		err = dec.Decode(cm)
		if err != nil {
			log.Warn("cant decode")
			cs.State = CS_ERR
			cs.SearchSession.Errors <- struct{}{}
			break loop
		}
		cs.DebugLastMessage = time.Now()
		cs.DebugInMessages++

		select {
		case cs.SearchSession.Events <- ClientEvent{Message: *cm}:
		default:
			log.Warnf("Dropping data read from socket, Events FULL")
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// only consumes, no worries about a full buffer getting stuck
func (cs *ClientSession) LoopChannelWrite() {
	log.Printf("ClientSession.LoopChannelWrite STARTED")
loop:
	for {
		select {
		case <-cs.Done:
			break loop
		case mes := <-cs.MessagesToSend:
			if cs.State == CS_ERR || cs.State == CS_OVER {
				break loop
			}
			w, err := cs.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("ClientSession.LoopChannelWrite cant get writer %v", err)
				cs.State = CS_ERR
				cs.SearchSession.Errors <- struct{}{}
				break loop
			}
			enc := gob.NewEncoder(w)
			err = enc.Encode(mes)
			if err != nil {
				log.Warnf("ClientSession.LoopChannelWrite cant encode %v", err)
				cs.State = CS_ERR
				cs.SearchSession.Errors <- struct{}{}
				break loop
			}
			err = w.Close()
			if err != nil {
				log.Warnf("ClientSession.LoopChannelWrite cant close writer %v", err)
				cs.State = CS_ERR
				cs.SearchSession.Errors <- struct{}{}
				break loop
			}
			cs.DebugOutMessages++
		}
	}
	log.Printf("LoopChannelWrite ENDED")
}
