package protocol

// Messages sent by the server.

type Welcome struct {
	PlayerID string `json:"playerId"`
	TickHz   int    `json:"tickHz"`
	Level    Level  `json:"level"`
}

// Level is the wire copy of the static geometry, sent once in the
// welcome so the client can render terrain locally.
type Level struct {
	Segments []SegmentSnapshot `json:"segments"`
	Tiles    []Point           `json:"tiles"`
}

type SegmentSnapshot struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type State struct {
	Tick    int              `json:"tick"`
	Players []PlayerSnapshot `json:"players"`
}

// PlayerSnapshot is one player's renderable state: the character circle,
// the ball circle, and whether the ball is held. A loose ball means the
// client should draw the tether between the two.
type PlayerSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	BallX float64 `json:"ballX"`
	BallY float64 `json:"ballY"`
	BallR float64 `json:"ballR"`
	Held  bool    `json:"held"`
}
