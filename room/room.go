package room

import (
	"fmt"
	"sync/atomic"
	"time"

	"chainball/game"
	"chainball/protocol"
)

// Room runs one toy session: an actor goroutine owning one simulation
// per connected player. The level is shared read-only across every sim;
// each sim's player and save slot are owned and mutated only here.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	level          *game.Level
	sims           map[string]*game.Sim
	names          map[string]string
	clients        map[string]Conn
	latestInputs   map[string]game.Input
	nextID         int
	tick           int
	numClients     atomic.Int64 // mirror of len(clients) for readers off the actor goroutine
	quit           chan struct{}

	Code    string            // room code (e.g. "ABC123")
	OnEmpty func(code string) // called when the last player leaves
}

func New(level *game.Level) *Room {
	broadcastEvery := protocol.SimTickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         protocol.SimTickHz,
		broadcastEvery: broadcastEvery,
		level:          level,
		sims:           make(map[string]*game.Sim),
		names:          make(map[string]string),
		clients:        make(map[string]Conn),
		latestInputs:   make(map[string]game.Input),
		nextID:         1,
		quit:           make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients. Safe to
// call from outside the room goroutine.
func (r *Room) NumPlayers() int {
	return int(r.numClients.Load())
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	dt := 1.0 / float64(r.tickHz)
	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.stepAll(dt)
			if r.tick%r.broadcastEvery == 0 {
				r.broadcastState()
			}
		}
	}
}

func (r *Room) stepAll(dt float64) {
	r.tick++
	for id, sim := range r.sims {
		in := r.latestInputs[id]
		sim.Update(in, dt)
		// One-shot intents fire once per client message, not once per tick.
		in.Reset, in.Save, in.Load = false, false, false
		r.latestInputs[id] = in
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		playerID := fmt.Sprintf("p%d", r.nextID)
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", r.nextID)
		}
		r.nextID++
		r.clients[playerID] = c.Conn
		r.numClients.Store(int64(len(r.clients)))
		r.names[playerID] = name
		r.latestInputs[playerID] = game.Input{}
		r.sims[playerID] = game.NewSim(r.level)
		c.Reply <- JoinResult{PlayerID: playerID}
	case Input:
		prev, ok := r.latestInputs[c.PlayerID]
		if !ok {
			return
		}
		in := c.Input
		// Level-sampled fields are last-writer-wins, but a one-shot intent
		// must survive until the next tick even if a later sample lands in
		// the same inter-tick window.
		in.Reset = in.Reset || prev.Reset
		in.Save = in.Save || prev.Save
		in.Load = in.Load || prev.Load
		r.latestInputs[c.PlayerID] = in
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	delete(r.latestInputs, playerID)
	delete(r.sims, playerID)
	delete(r.names, playerID)
	if ok {
		r.sendStateTo(c)
		_ = c.Close()
		delete(r.clients, playerID)
		r.numClients.Store(int64(len(r.clients)))
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removePlayer(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
	}
	delete(r.clients, playerID)
	r.numClients.Store(int64(len(r.clients)))
	delete(r.latestInputs, playerID)
	delete(r.sims, playerID)
	delete(r.names, playerID)
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removePlayer(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	snapshot := protocol.State{
		Tick:    r.tick,
		Players: make([]protocol.PlayerSnapshot, 0, len(r.sims)),
	}
	for id, sim := range r.sims {
		obs := sim.Observe()
		snapshot.Players = append(snapshot.Players, protocol.PlayerSnapshot{
			ID:    id,
			Name:  r.names[id],
			X:     obs.Character.X,
			Y:     obs.Character.Y,
			R:     obs.CharacterRadius,
			BallX: obs.Ball.X,
			BallY: obs.Ball.Y,
			BallR: obs.BallRadius,
			Held:  obs.Held,
		})
	}
	return snapshot
}

// LevelSnapshot converts the room's level for the welcome message.
func (r *Room) LevelSnapshot() protocol.Level {
	out := protocol.Level{
		Segments: make([]protocol.SegmentSnapshot, 0, len(r.level.Segments)),
		Tiles:    make([]protocol.Point, 0, len(r.level.Tiles)),
	}
	for _, s := range r.level.Segments {
		out.Segments = append(out.Segments, protocol.SegmentSnapshot{
			P1: protocol.Point{X: s.P1.X, Y: s.P1.Y},
			P2: protocol.Point{X: s.P2.X, Y: s.P2.Y},
		})
	}
	for _, tile := range r.level.Tiles {
		out.Tiles = append(out.Tiles, protocol.Point{X: tile.X, Y: tile.Y})
	}
	return out
}
