package main

import (
	"fmt"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/scene"
)

var (
	clipboardInit sync.Once
	clipboardErr  error
)

// buildReport summarizes the running scene as plain text: what was
// spawned, the physics parameters, and where the camera sits.
func buildReport(w *ecs.World, spec *scene.Spec) string {
	boxes := 0
	circles := 0
	statics := 0
	ecs.ForEach(w, component.RigidBodyComponent, func(e ecs.Entity, rb *component.RigidBody) {
		if rb.Kind == component.BodyStatic {
			statics++
			return
		}
		if ecs.Has(w, e, component.BoxShapeComponent) {
			boxes++
		} else if ecs.Has(w, e, component.CircleShapeComponent) {
			circles++
		}
	})

	var b strings.Builder
	fmt.Fprintf(&b, "scene %q seed %d\n", spec.Name, spec.Seed)
	fmt.Fprintf(&b, "gravity (%v, %v), %d solver iterations\n", spec.Physics.Gravity.X, spec.Physics.Gravity.Y, spec.Physics.Iterations)
	fmt.Fprintf(&b, "%d boxes, %d circles, %d static bodies\n", boxes, circles, statics)

	if camEntity, ok := w.First(component.CameraComponent.ID()); ok {
		transform, okT := ecs.Get(w, camEntity, component.TransformComponent)
		cam, okC := ecs.Get(w, camEntity, component.CameraComponent)
		if okT && okC {
			fmt.Fprintf(&b, "camera (%.2f, %.2f) zoom %.2f\n", transform.X, transform.Y, cam.Zoom)
		}
	}
	return b.String()
}

// copyToClipboard puts text on the system clipboard. The clipboard
// initializes once on first use; on headless systems that fails and
// every copy reports the same error.
func copyToClipboard(text string) error {
	clipboardInit.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
