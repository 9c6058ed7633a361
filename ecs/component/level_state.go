package component

type LevelPhase uint8

const (
	LevelPlaying LevelPhase = iota
	LevelCompleting
)

func (p LevelPhase) String() string {
	if p == LevelCompleting {
		return "completing"
	}
	return "playing"
}

// LevelState is the campaign progress singleton. Index is always in
// [0, Count).
type LevelState struct {
	Index       int
	Count       int
	Phase       LevelPhase
	Deaths      int
	Completions int
	Laps        int
}

var LevelStateComponent = NewComponent[LevelState]()

// Spawn is where the body is placed on level load and after a death.
// Fallback is set when the level had no static platform to derive it from.
type Spawn struct {
	X        float64
	Y        float64
	Fallback bool
}

var SpawnComponent = NewComponent[Spawn]()
