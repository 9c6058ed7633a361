package ecs

// Scheduler is the tick pipeline: it runs its systems in the order given,
// once per Update, and counts the ticks run so far.
type Scheduler struct {
	systems []System
	ticks   uint64
}

// NewScheduler skips nil systems.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system != nil {
		s.systems = append(s.systems, system)
	}
}

// Update runs one tick.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	s.ticks++
}

// Ticks returns how many times Update has run.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
