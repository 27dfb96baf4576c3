package entity

import (
	"fmt"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/scene"
)

// NewCamera creates the camera entity at the pose the scene asks for.
// The camera is not part of the physics scene and survives rebuilds.
func NewCamera(w *ecs.World, spec scene.CameraSpec) (ecs.Entity, error) {
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{
		X: spec.X,
		Y: spec.Y,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		Zoom:      spec.Zoom,
		MoveSpeed: spec.MoveSpeed,
		ZoomIn:    spec.ZoomIn,
		ZoomOut:   spec.ZoomOut,
		MinZoom:   spec.MinZoom,
		MaxZoom:   spec.MaxZoom,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
