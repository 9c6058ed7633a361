package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// LevelEntity marks entities owned by the loaded level. They are destroyed
// when the level index changes.
type LevelEntity struct {
	Index int
}

var LevelEntityComponent = NewComponent[LevelEntity]()
