package component

// Camera holds the view pose controls. The camera's position lives in
// the entity's Transform; Zoom multiplies the base pixels-per-meter
// scale and is clamped to [MinZoom, MaxZoom].
type Camera struct {
	Zoom      float64
	MoveSpeed float64 // pan speed in meters per second
	ZoomIn    float64 // per-tick zoom factor while zooming in
	ZoomOut   float64 // per-tick zoom factor while zooming out
	MinZoom   float64
	MaxZoom   float64
}

var CameraComponent = NewComponentKind[Camera]()
