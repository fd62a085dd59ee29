package game

const (
	Gravity = 50.0

	CharacterRadius = 1.0
	BallRadius      = 0.5

	SwingDistance    = 0.8  // ball offset from the character while held
	SwingSpeed       = 25.0 // held-ball velocity magnitude
	SwingAngularRate = 15.0 // radians per second of swing rotation

	InitialChainLen = 1.0
	ReleaseChainLen = 2.0

	ChainRetractRate  = 5.0 // per second, while the released ball sits grounded
	ChainRetractFloor = 0.1 // reaching it returns the ball to hand
	ChainShortenRate  = 2.0 // per second, while the shorten control is held
	ChainShortenFloor = 0.05

	SubSteps = 100 // physics sub-steps per frame
)
