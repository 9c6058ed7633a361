package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// InputSource produces the intent snapshot for the next tick. Front ends
// implement it over their keyboard state.
type InputSource interface {
	Poll() component.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Input

func (f InputFunc) Poll() component.Input { return f() }

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil {
		return
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	*input = i.source.Poll()
}
