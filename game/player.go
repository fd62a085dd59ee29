package game

// Player couples the character body to the ball through the chain.
// While Held, the ball is not simulated: its position is slaved to the
// character plus the current swing direction. ChainLen is the longest
// allowed character-to-ball distance; the chain only ever pulls.
type Player struct {
	Character Ball
	Ball      Ball
	Held      bool
	ChainLen  float64
}

func NewPlayer() Player {
	return Player{
		Character: NewBall(Vec2{}, CharacterRadius),
		Ball:      NewBall(Vec2{}, BallRadius),
		Held:      true,
		ChainLen:  InitialChainLen,
	}
}

// Step advances both bodies one sub-step. Ordering is load-bearing:
// ball physics, then chain retraction, then the chain dragging the
// character, then the character's own physics. The character's collision
// response runs after the drag, so the drag cannot leave it inside
// terrain at the end of a step.
func (p *Player) Step(level *Level, dt float64) {
	if p.Held {
		p.Ball.Pos = p.Character.Pos.Add(p.Ball.Vel.Normalize().Mul(SwingDistance))
	} else {
		p.Ball.Step(level, dt)
		if p.Ball.Grounded {
			p.ChainLen -= ChainRetractRate * dt
			if p.ChainLen < ChainRetractFloor {
				p.ChainLen = ChainRetractFloor
				p.Held = true
			}
		}
		delta := p.Ball.Pos.Sub(p.Character.Pos)
		if excess := delta.Len() - p.ChainLen; excess > 0 {
			p.Character.Pos = p.Character.Pos.Add(delta.Normalize().Mul(excess))
		}
	}
	p.Character.Step(level, dt)
}
