package system

import (
	"math"
	"testing"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

func addCameraEntity(t *testing.T, w *ecs.World, cam component.Camera) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent, &cam); err != nil {
		t.Fatalf("add camera: %v", err)
	}
	return e
}

func defaultCamera() component.Camera {
	return component.Camera{
		Zoom:      1.2,
		MoveSpeed: 4,
		ZoomIn:    1.01,
		ZoomOut:   0.99,
		MinZoom:   0.05,
		MaxZoom:   50,
	}
}

func TestCameraPanScalesByTimeStep(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		panX  float64
		panY  float64
		ticks int
		wantX float64
		wantY float64
	}{
		{"right one tick", 1.0 / 60, 1, 0, 1, 4.0 / 60, 0},
		{"up one tick", 1.0 / 60, 0, 1, 1, 0, 4.0 / 60},
		{"diagonal", 1.0 / 60, 1, -1, 1, 4.0 / 60, -4.0 / 60},
		{"bigger step", 0.1, 1, 0, 1, 0.4, 0},
		{"one second of ticks", 1.0 / 60, 1, 0, 60, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.SetTimeStep(tt.dt)
			camEntity := addCameraEntity(t, w, defaultCamera())
			input := addInputEntity(t, w)
			input.PanX = tt.panX
			input.PanY = tt.panY

			cs := NewCameraSystem()
			for i := 0; i < tt.ticks; i++ {
				cs.Update(w)
			}

			transform, _ := ecs.Get(w, camEntity, component.TransformComponent)
			if math.Abs(transform.X-tt.wantX) > 1e-9 || math.Abs(transform.Y-tt.wantY) > 1e-9 {
				t.Fatalf("camera at (%v, %v), want (%v, %v)", transform.X, transform.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraZoomFactors(t *testing.T) {
	w := ecs.NewWorld()
	camEntity := addCameraEntity(t, w, defaultCamera())
	input := addInputEntity(t, w)

	cs := NewCameraSystem()

	input.ZoomIn = true
	cs.Update(w)
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
	if math.Abs(cam.Zoom-1.2*1.01) > 1e-9 {
		t.Fatalf("zoom in gave %v, want %v", cam.Zoom, 1.2*1.01)
	}

	input.ZoomIn = false
	input.ZoomOut = true
	cs.Update(w)
	if math.Abs(cam.Zoom-1.2*1.01*0.99) > 1e-9 {
		t.Fatalf("zoom out gave %v, want %v", cam.Zoom, 1.2*1.01*0.99)
	}
}

func TestCameraZoomClamps(t *testing.T) {
	cam := defaultCamera()
	cam.Zoom = 49.9

	w := ecs.NewWorld()
	camEntity := addCameraEntity(t, w, cam)
	input := addInputEntity(t, w)
	input.ZoomIn = true

	cs := NewCameraSystem()
	for i := 0; i < 120; i++ {
		cs.Update(w)
	}

	got, _ := ecs.Get(w, camEntity, component.CameraComponent)
	if got.Zoom != 50 {
		t.Fatalf("zoom %v, want clamped to 50", got.Zoom)
	}

	input.ZoomIn = false
	input.ZoomOut = true
	for i := 0; i < 100000; i++ {
		cs.Update(w)
	}
	if got.Zoom != 0.05 {
		t.Fatalf("zoom %v, want clamped to 0.05", got.Zoom)
	}
}

func TestCameraWithoutInputEntity(t *testing.T) {
	w := ecs.NewWorld()
	camEntity := addCameraEntity(t, w, defaultCamera())

	cs := NewCameraSystem()
	cs.Update(w)

	transform, _ := ecs.Get(w, camEntity, component.TransformComponent)
	if transform.X != 0 || transform.Y != 0 {
		t.Fatalf("camera moved without input: (%v, %v)", transform.X, transform.Y)
	}
}

func TestCameraReacquiresAfterDestroy(t *testing.T) {
	w := ecs.NewWorld()
	first := addCameraEntity(t, w, defaultCamera())
	input := addInputEntity(t, w)
	input.PanX = 1

	cs := NewCameraSystem()
	cs.Update(w)

	w.DestroyEntity(first)
	second := addCameraEntity(t, w, defaultCamera())
	cs.Update(w)

	transform, _ := ecs.Get(w, second, component.TransformComponent)
	if transform.X == 0 {
		t.Fatal("camera system never picked up the replacement camera")
	}
}
