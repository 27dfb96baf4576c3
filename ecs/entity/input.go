package entity

import (
	"fmt"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

// NewInput creates the singleton entity the input system writes its
// per-tick state into. Like the camera it survives scene rebuilds.
func NewInput(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.InputComponent, &component.Input{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("input: add input component: %w", err)
	}
	return e, nil
}
