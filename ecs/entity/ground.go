package entity

import (
	"fmt"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/scene"
)

// NewGround creates the static slab the dropped bodies land on.
func NewGround(w *ecs.World, spec scene.GroundSpec) (ecs.Entity, error) {
	ground := w.CreateEntity()
	if err := ecs.Add(w, ground, component.TransformComponent, &component.Transform{
		X: spec.Position.X,
		Y: spec.Position.Y,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("ground: add transform: %w", err)
	}

	if err := ecs.Add(w, ground, component.RigidBodyComponent, &component.RigidBody{
		Kind: component.BodyStatic,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("ground: add rigid body: %w", err)
	}

	if err := ecs.Add(w, ground, component.BoxShapeComponent, &component.BoxShape{
		Width:    spec.Size.Width,
		Height:   spec.Size.Height,
		Friction: spec.Friction,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("ground: add box shape: %w", err)
	}

	return ground, nil
}

// wallThickness is the horizontal extent of each side wall, meters.
const wallThickness = 0.2

// NewWalls fences the pile in with two thin static boxes standing on
// the ground slab at x = ±HalfWidth.
func NewWalls(w *ecs.World, ground scene.GroundSpec, spec scene.WallsSpec) ([]ecs.Entity, error) {
	groundTop := ground.Position.Y + ground.Size.Height/2
	centerY := groundTop + spec.Height/2

	walls := make([]ecs.Entity, 0, 2)
	for _, x := range []float64{-spec.HalfWidth, spec.HalfWidth} {
		wall := w.CreateEntity()
		if err := ecs.Add(w, wall, component.TransformComponent, &component.Transform{
			X: x,
			Y: centerY,
		}); err != nil {
			return nil, fmt.Errorf("walls: add transform: %w", err)
		}
		if err := ecs.Add(w, wall, component.RigidBodyComponent, &component.RigidBody{
			Kind: component.BodyStatic,
		}); err != nil {
			return nil, fmt.Errorf("walls: add rigid body: %w", err)
		}
		if err := ecs.Add(w, wall, component.BoxShapeComponent, &component.BoxShape{
			Width:    wallThickness,
			Height:   spec.Height,
			Friction: ground.Friction,
		}); err != nil {
			return nil, fmt.Errorf("walls: add box shape: %w", err)
		}
		walls = append(walls, wall)
	}
	return walls, nil
}
