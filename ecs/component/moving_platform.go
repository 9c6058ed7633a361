package component

// Oscillator drives a moving platform back and forth between MinX and MaxX
// (bounds on the platform's left edge). Dir is -1 or +1.
type Oscillator struct {
	MinX  float64
	MaxX  float64
	Speed float64
	Dir   int
	// DeltaX is the displacement of the most recent advance; carried bodies
	// receive it.
	DeltaX float64
	Flips  int
}

var OscillatorComponent = NewComponent[Oscillator]()

// Bob adds a vertical sine motion independent of the horizontal one.
type Bob struct {
	BaseY        float64
	Amplitude    float64
	AngularSpeed float64
	Angle        float64
	DeltaY       float64
}

var BobComponent = NewComponent[Bob]()
