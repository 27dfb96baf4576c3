package system

import (
	"github.com/quarterpie/tumble/common"
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

// CameraSystem pans the camera from the held pan axes and steps the
// zoom while a zoom key is held. Panning moves MoveSpeed meters per
// second scaled by the tick's time step; zoom multiplies by a per-tick
// factor and clamps to the camera's bounds.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.ID())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	input, ok := firstInput(w)
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}

	dt := w.TimeStep()
	transform.X += input.PanX * cam.MoveSpeed * dt
	transform.Y += input.PanY * cam.MoveSpeed * dt

	if input.ZoomIn {
		cam.Zoom *= cam.ZoomIn
	}
	if input.ZoomOut {
		cam.Zoom *= cam.ZoomOut
	}
	cam.Zoom = common.Clamp(cam.Zoom, cam.MinZoom, cam.MaxZoom)
}

func firstInput(w *ecs.World) (*component.Input, bool) {
	e, ok := w.First(component.InputComponent.ID())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.InputComponent)
}
