package entity

import (
	"fmt"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/scene"
)

// NewBox creates one dynamic box at the given world position.
func NewBox(w *ecs.World, spec scene.BoxSpec, x, y float64) (ecs.Entity, error) {
	box := w.CreateEntity()
	if err := ecs.Add(w, box, component.TransformComponent, &component.Transform{
		X: x,
		Y: y,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("box: add transform: %w", err)
	}

	if err := ecs.Add(w, box, component.RigidBodyComponent, &component.RigidBody{
		Kind: component.BodyDynamic,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("box: add rigid body: %w", err)
	}

	if err := ecs.Add(w, box, component.BoxShapeComponent, &component.BoxShape{
		Width:       spec.Size,
		Height:      spec.Size,
		Density:     spec.Density,
		Friction:    spec.Friction,
		Restitution: spec.Restitution,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("box: add box shape: %w", err)
	}

	return box, nil
}

// NewCircle creates one dynamic circle at the given world position.
func NewCircle(w *ecs.World, spec scene.CircleSpec, x, y float64) (ecs.Entity, error) {
	circle := w.CreateEntity()
	if err := ecs.Add(w, circle, component.TransformComponent, &component.Transform{
		X: x,
		Y: y,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("circle: add transform: %w", err)
	}

	if err := ecs.Add(w, circle, component.RigidBodyComponent, &component.RigidBody{
		Kind: component.BodyDynamic,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("circle: add rigid body: %w", err)
	}

	if err := ecs.Add(w, circle, component.CircleShapeComponent, &component.CircleShape{
		Radius:      spec.Radius,
		Density:     spec.Density,
		Friction:    spec.Friction,
		Restitution: spec.Restitution,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("circle: add circle shape: %w", err)
	}

	return circle, nil
}
