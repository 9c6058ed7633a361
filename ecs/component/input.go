package component

// Input is the polled intent snapshot for one tick. Front ends overwrite it
// between ticks; systems only read it.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

var InputComponent = NewComponent[Input]()
