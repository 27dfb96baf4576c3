package system

import (
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

// pixelsPerUnit is the base render scale: how many screen pixels one
// world meter covers at zoom 1.
const pixelsPerUnit = 100.0

// View is the camera projection for one frame. World space is meters
// with Y up; screen space is pixels with Y down and the origin in the
// top left corner. The camera position maps to the screen center.
type View struct {
	CamX  float64
	CamY  float64
	Scale float64 // pixels per meter, zoom applied
	HalfW float64
	HalfH float64
}

// CameraView captures the current camera pose, or a unit view centered
// on the origin when no camera entity exists.
func CameraView(w *ecs.World, screenW, screenH float64) View {
	v := View{Scale: pixelsPerUnit, HalfW: screenW / 2, HalfH: screenH / 2}
	camEntity, ok := w.First(component.CameraComponent.ID())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		v.CamX = t.X
		v.CamY = t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		v.Scale = pixelsPerUnit * cam.Zoom
	}
	return v
}

// WorldToScreen projects a world point into screen pixels.
func (v View) WorldToScreen(wx, wy float64) (float64, float64) {
	return v.HalfW + (wx-v.CamX)*v.Scale, v.HalfH - (wy-v.CamY)*v.Scale
}

// ScreenToWorld projects a screen pixel into world space.
func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	return v.CamX + (sx-v.HalfW)/v.Scale, v.CamY + (v.HalfH-sy)/v.Scale
}
