package component

// DeathCause describes why the body is being reset.
type DeathCause string

const (
	CauseHazard DeathCause = "hazard"
	CauseLava   DeathCause = "lava"
	CauseFell   DeathCause = "fell"
)

// RespawnRequest is a marker asking the RespawnSystem to put the player
// back on the spawn point. Once present, later requests in the same tick are
// ignored: the first cause is kept and any number of overlapping hazards
// yields one reset.
type RespawnRequest struct {
	Cause DeathCause
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
