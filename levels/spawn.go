package levels

// SpawnSource records which rule produced a spawn point.
type SpawnSource int

const (
	SpawnExplicit SpawnSource = iota
	SpawnFromPlatform
	SpawnFallback
)

func (s SpawnSource) String() string {
	switch s {
	case SpawnExplicit:
		return "explicit"
	case SpawnFromPlatform:
		return "platform"
	case SpawnFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// DefaultSpawn is used when a level has neither an authored spawn nor a
// static platform to stand on.
var DefaultSpawn = Point{X: 80, Y: 300}

// ResolveSpawn picks the body's spawn point: the authored spawn if any,
// otherwise offset from the first static platform's top-left corner,
// otherwise fallback.
func (l *Level) ResolveSpawn(offset, fallback Point) (Point, SpawnSource) {
	if l == nil {
		return fallback, SpawnFallback
	}
	if l.Spawn != nil {
		return *l.Spawn, SpawnExplicit
	}
	if len(l.Platforms) == 0 {
		return fallback, SpawnFallback
	}
	first := l.Platforms[0]
	return Point{X: first.X + offset.X, Y: first.Y + offset.Y}, SpawnFromPlatform
}
