package entity

import (
	"fmt"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/scene"
)

// BuildScene populates the world with everything a scene spec names:
// the ground slab, the side walls when enabled, and the spawned column
// of dynamic bodies. It returns the number of bodies spawned.
func BuildScene(w *ecs.World, spec *scene.Spec) (int, error) {
	if _, err := NewGround(w, spec.Ground); err != nil {
		return 0, fmt.Errorf("scene: build ground: %w", err)
	}

	if spec.Walls.Enabled {
		if _, err := NewWalls(w, spec.Ground, spec.Walls); err != nil {
			return 0, fmt.Errorf("scene: build walls: %w", err)
		}
	}

	spawned := 0
	for _, p := range scene.Placements(spec.Spawn, spec.Seed) {
		var err error
		switch p.Kind {
		case scene.KindBox:
			_, err = NewBox(w, spec.Spawn.Box, p.X, p.Y)
		case scene.KindCircle:
			_, err = NewCircle(w, spec.Spawn.Circle, p.X, p.Y)
		default:
			err = fmt.Errorf("unknown shape kind %v", p.Kind)
		}
		if err != nil {
			return spawned, fmt.Errorf("scene: spawn body %d: %w", spawned, err)
		}
		spawned++
	}

	return spawned, nil
}

// ClearScene destroys every entity carrying a rigid body, leaving the
// camera and input entities in place. It returns how many it removed.
func ClearScene(w *ecs.World) int {
	removed := 0
	for _, e := range w.Query(component.RigidBodyComponent.ID()) {
		if w.DestroyEntity(e) {
			removed++
		}
	}
	return removed
}
