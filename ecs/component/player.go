package component

// Player holds the movement tuning applied by the integrator.
type Player struct {
	MoveSpeed        float64
	JumpPower        float64
	Gravity          float64
	TerminalVelocity float64
	// CeilingBounce is the downward speed given to the body after a head bump.
	CeilingBounce float64
}

var PlayerComponent = NewComponent[Player]()
