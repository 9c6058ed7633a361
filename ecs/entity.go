package ecs

import "fmt"

// Entity is a generational handle. The low half indexes the entity table
// (starting at 1), the high half counts how often that slot was reused, so a
// handle kept past DestroyEntity never matches the slot's next owner.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const slotBits = 32

// NoEntity is the zero handle; it is never allocated.
const NoEntity Entity = 0

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(e) }

func (e Entity) generation() generation { return generation(e >> slotBits) }

// Handle returns the raw handle for storage in components, which cannot
// import this package.
func (e Entity) Handle() uint64 { return uint64(e) }

func (e Entity) String() string {
	if e == NoEntity {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d/%d)", e.id(), e.generation())
}
