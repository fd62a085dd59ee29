package game

// Input carries the frame's control intents. Swing is a level-sampled
// held button; the sim detects its press and release edges itself. Reset,
// Save and Load act on any frame they are set; Shorten applies
// continuously while set.
type Input struct {
	Swing   bool
	Shorten bool
	Reset   bool
	Save    bool
	Load    bool
}

// Sim drives one player against a shared read-only level. It owns the
// save slot and the clock behind the swing rotation; both are explicit
// state here rather than package globals.
type Sim struct {
	Level    *Level
	Player   Player
	Time     float64
	Swinging bool

	saved     *Player
	prevSwing bool
}

func NewSim(level *Level) *Sim {
	return &Sim{Level: level, Player: NewPlayer()}
}

// Update advances one frame. dt is the frame's elapsed wall time in
// seconds, split into SubSteps fixed sub-steps so resolution stays stable
// at any frame rate. The one-shot intents and swing edges apply after the
// sub-steps, the way an event loop delivers them between frames.
func (s *Sim) Update(in Input, dt float64) {
	s.Time += dt

	if in.Shorten {
		s.Player.ChainLen -= ChainShortenRate * dt
		if s.Player.ChainLen < ChainShortenFloor {
			s.Player.ChainLen = ChainShortenFloor
		}
	}
	if s.Player.Held {
		s.Player.Ball.Vel = Vec2{X: SwingSpeed}.Rotated(s.Time * SwingAngularRate)
	}

	step := dt / SubSteps
	for i := 0; i < SubSteps; i++ {
		s.Player.Step(s.Level, step)
	}

	if in.Swing && !s.prevSwing {
		s.Swinging = true
	}
	if !in.Swing && s.prevSwing {
		s.release()
	}
	s.prevSwing = in.Swing

	if in.Reset {
		s.Player = NewPlayer()
	}
	if in.Save {
		saved := s.Player
		s.saved = &saved
	}
	if in.Load && s.saved != nil {
		s.Player = *s.saved
	}
}

// release lets go of the swung ball: its velocity turns a quarter turn
// from the swing tangent, it starts falling fresh, and the chain pays out
// to its released length. The chain re-extends even if the ball was
// already loose.
func (s *Sim) release() {
	s.Swinging = false
	if s.Player.Held {
		s.Player.Held = false
		s.Player.Ball.Vel = s.Player.Ball.Vel.Rotate90()
		s.Player.Ball.Grounded = false
	}
	s.Player.ChainLen = ReleaseChainLen
}

// Observation is the renderer-facing view of one frame. Held reports
// whether to draw the tether; while the ball is held but not being swung
// it reads as resting above the character's head.
type Observation struct {
	Character       Vec2
	CharacterRadius float64
	Ball            Vec2
	BallRadius      float64
	Held            bool
}

func (s *Sim) Observe() Observation {
	obs := Observation{
		Character:       s.Player.Character.Pos,
		CharacterRadius: s.Player.Character.Radius,
		Ball:            s.Player.Ball.Pos,
		BallRadius:      s.Player.Ball.Radius,
		Held:            s.Player.Held,
	}
	if s.Player.Held && !s.Swinging {
		obs.Ball = s.Player.Character.Pos.Add(Vec2{Y: 1})
	}
	return obs
}
