package protocol

// Messages sent by the client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional display name
}

// Input carries the control intents sampled each client frame. Swing is
// level-sampled (button currently down); the server detects its press and
// release edges. The rest are one-shot except Shorten, which applies for
// as long as it stays set.
type Input struct {
	Swing   bool `json:"swing,omitempty"`
	Shorten bool `json:"shorten,omitempty"`
	Reset   bool `json:"reset,omitempty"`
	Save    bool `json:"save,omitempty"`
	Load    bool `json:"load,omitempty"`
}
