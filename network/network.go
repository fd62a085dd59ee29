// Package network bridges WebSocket connections to room actors: it
// decodes client envelopes into room commands and pumps broadcasts back
// out without ever blocking the room goroutine.
package network

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chainball/game"
	"chainball/protocol"
	"chainball/room"
)

const (
	readLimit    = 1 << 20
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 25 * time.Second
	sendBuffer   = 64
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Register installs the HTTP surface: the websocket endpoint plus the
// room listing/creation API.
func Register(mux *http.ServeMux, m *room.Manager) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		wsHandler(w, r, m)
	})
	mux.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(m.ListRooms())
	})
	mux.HandleFunc("/rooms/create", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(room.RoomInfo{Code: m.CreateRoom()})
	})
}

// client adapts one websocket connection to the room.Conn seam. Sends go
// through a buffered channel drained by a writer goroutine; a full buffer
// fails the send so the room drops the client instead of stalling.
type client struct {
	conn      *websocket.Conn
	out       chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		out:  make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *client) Send(b []byte) error {
	select {
	case c.out <- b:
		return nil
	case <-c.done:
		return fmt.Errorf("connection closed")
	default:
		return fmt.Errorf("send buffer full")
	}
}

func (c *client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.conn.Close()
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case b := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func wsHandler(w http.ResponseWriter, r *http.Request, m *room.Manager) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	c := newClient(conn)
	defer c.Close()
	go c.writePump()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// First message must be a hello.
	hello, err := readHello(conn)
	if err != nil {
		log.Println("hello:", err)
		return
	}

	code := r.URL.Query().Get("room")
	if code == "" {
		code = m.CreateRoom()
	}
	rm := m.GetOrCreateRoom(code)
	if rm == nil {
		log.Println("join: no room for code", code)
		return
	}

	reply := make(chan room.JoinResult, 1)
	rm.Inbox <- room.Join{Conn: c, Name: hello.Name, Reply: reply}
	res := <-reply

	welcome, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		PlayerID: res.PlayerID,
		TickHz:   protocol.SimTickHz,
		Level:    rm.LevelSnapshot(),
	})
	if err != nil {
		log.Println("welcome:", err)
		return
	}
	_ = c.Send(welcome)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			rm.Inbox <- room.Leave{PlayerID: res.PlayerID}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		if env.T != protocol.MsgInput {
			continue
		}
		in, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			continue
		}
		rm.Inbox <- room.Input{PlayerID: res.PlayerID, Input: toGameInput(in)}
	}
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, fmt.Errorf("first message type %q, want %q", env.T, protocol.MsgHello)
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func toGameInput(in protocol.Input) game.Input {
	return game.Input{
		Swing:   in.Swing,
		Shorten: in.Shorten,
		Reset:   in.Reset,
		Save:    in.Save,
		Load:    in.Load,
	}
}
