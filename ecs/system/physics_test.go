package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

func newTestWorld(dt float64) *ecs.World {
	w := ecs.NewWorld()
	w.SetTimeStep(dt)
	return w
}

func addStaticBox(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Kind: component.BodyStatic}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}
	if err := ecs.Add(w, e, component.BoxShapeComponent, &component.BoxShape{
		Width: width, Height: height, Friction: 0.5,
	}); err != nil {
		t.Fatalf("add box shape: %v", err)
	}
	return e
}

func addDynamicBox(t *testing.T, w *ecs.World, x, y, size float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Kind: component.BodyDynamic}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}
	if err := ecs.Add(w, e, component.BoxShapeComponent, &component.BoxShape{
		Width: size, Height: size, Density: 1, Friction: 0.5, Restitution: 0.1,
	}); err != nil {
		t.Fatalf("add box shape: %v", err)
	}
	return e
}

func addDynamicCircle(t *testing.T, w *ecs.World, x, y, radius float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Kind: component.BodyDynamic}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}
	if err := ecs.Add(w, e, component.CircleShapeComponent, &component.CircleShape{
		Radius: radius, Density: 1, Friction: 0.5, Restitution: 0.1,
	}); err != nil {
		t.Fatalf("add circle shape: %v", err)
	}
	return e
}

func addInputEntity(t *testing.T, w *ecs.World) *component.Input {
	t.Helper()
	e := w.CreateEntity()
	input := &component.Input{}
	if err := ecs.Add(w, e, component.InputComponent, input); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return input
}

func queryFilter() cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: cp.ALL_CATEGORIES}
}

func TestBoxSettlesOnGround(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	addStaticBox(t, w, 0, -3, 64, 0.32)
	box := addDynamicBox(t, w, 0, 0, 0.32)

	ps := NewPhysicsSystem(0, -9.81, 10, 0)
	for i := 0; i < 600; i++ {
		ps.Update(w)
	}

	transform, ok := ecs.Get(w, box, component.TransformComponent)
	if !ok {
		t.Fatal("box lost its transform")
	}
	// Slab top at -2.84, so the box center rests half a box above it.
	wantY := -3 + 0.32/2 + 0.32/2
	if math.Abs(transform.Y-wantY) > 0.05 {
		t.Fatalf("box rests at y=%v, want about %v", transform.Y, wantY)
	}
	if math.Abs(transform.X) > 0.5 {
		t.Fatalf("box drifted to x=%v", transform.X)
	}

	rb, _ := ecs.Get(w, box, component.RigidBodyComponent)
	if rb.Body == nil {
		t.Fatal("box was never materialized")
	}
	if speed := rb.Body.Velocity().Length(); speed > 0.1 {
		t.Fatalf("box still moving at %v m/s after 10s", speed)
	}
}

func TestMissingShapeSkippedUntilAdded(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.RigidBodyComponent, &component.RigidBody{Kind: component.BodyDynamic}); err != nil {
		t.Fatalf("add rigid body: %v", err)
	}

	ps := NewPhysicsSystem(0, -9.81, 10, 0)
	ps.Update(w)

	rb, _ := ecs.Get(w, e, component.RigidBodyComponent)
	if rb.Body != nil {
		t.Fatal("shapeless entity entered the space")
	}

	if err := ecs.Add(w, e, component.BoxShapeComponent, &component.BoxShape{
		Width: 0.32, Height: 0.32, Density: 1, Friction: 0.5,
	}); err != nil {
		t.Fatalf("add box shape: %v", err)
	}
	ps.Update(w)

	if rb.Body == nil {
		t.Fatal("entity not materialized after gaining a shape")
	}
}

func TestDestroyedEntityLeavesSpace(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	box := addDynamicBox(t, w, 1, 2, 0.32)

	ps := NewPhysicsSystem(0, 0, 10, 0)
	ps.Update(w)

	at := cp.Vector{X: 1, Y: 2}
	if info := ps.Space().PointQueryNearest(at, grabRadius, queryFilter()); info == nil || info.Shape == nil {
		t.Fatal("box shape not found in space after materialize")
	}

	w.DestroyEntity(box)
	ps.Update(w)

	if info := ps.Space().PointQueryNearest(at, grabRadius, queryFilter()); info != nil && info.Shape != nil {
		t.Fatal("box shape still in space after entity destroy")
	}
}

func TestImpactEvents(t *testing.T) {
	drop := func(t *testing.T, minImpact float64) []ecs.ImpactEvent {
		t.Helper()
		w := newTestWorld(1.0 / 60)
		addStaticBox(t, w, 0, -1, 10, 0.32)
		addDynamicCircle(t, w, 0, 0.5, 0.16)

		ps := NewPhysicsSystem(0, -9.81, 10, minImpact)
		var impacts []ecs.ImpactEvent
		for i := 0; i < 240; i++ {
			ps.Update(w)
			for _, ev := range w.Events().Drain() {
				if ev.Type != ecs.EventImpact {
					continue
				}
				impact, ok := ev.Data.(ecs.ImpactEvent)
				if !ok {
					t.Fatalf("impact event carries %T", ev.Data)
				}
				impacts = append(impacts, impact)
			}
		}
		return impacts
	}

	t.Run("falling circle reports a hit", func(t *testing.T) {
		impacts := drop(t, 0)
		if len(impacts) == 0 {
			t.Fatal("no impact events in 4 seconds of falling")
		}
		if impacts[0].Speed <= 1 {
			t.Fatalf("first impact speed %v, want > 1 m/s after a 1m drop", impacts[0].Speed)
		}
	})

	t.Run("threshold filters slow contacts", func(t *testing.T) {
		if impacts := drop(t, 1000); len(impacts) != 0 {
			t.Fatalf("got %d impacts past an impossible threshold", len(impacts))
		}
	})
}

func TestWallsContainBody(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	addStaticBox(t, w, 0, -1, 8, 0.32)
	addStaticBox(t, w, -2, 1, 0.2, 4)
	addStaticBox(t, w, 2, 1, 0.2, 4)
	ball := addDynamicCircle(t, w, 0, 0, 0.16)

	ps := NewPhysicsSystem(0, -9.81, 10, 0)
	ps.Update(w)

	rb, _ := ecs.Get(w, ball, component.RigidBodyComponent)
	if rb.Body == nil {
		t.Fatal("ball was never materialized")
	}
	rb.Body.SetVelocity(6, 0)

	for i := 0; i < 600; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, ball, component.TransformComponent)
	if math.Abs(transform.X) > 2 {
		t.Fatalf("ball escaped the walls, x=%v", transform.X)
	}
}

func TestMouseDrag(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	input := addInputEntity(t, w)
	box := addDynamicBox(t, w, 0, 0, 0.32)

	ps := NewPhysicsSystem(0, 0, 10, 0)

	input.DragPressed = true
	input.DragHeld = true
	ps.Update(w)

	if ps.mouseJoint == nil {
		t.Fatal("drag did not attach to the body under the cursor")
	}
	if ps.dragEntity != box {
		t.Fatalf("dragging %v, want %v", ps.dragEntity, box)
	}

	input.DragPressed = false
	ps.Update(w)
	if ps.mouseJoint == nil {
		t.Fatal("joint dropped while the button was still held")
	}

	input.DragHeld = false
	ps.Update(w)
	if ps.mouseJoint != nil {
		t.Fatal("joint survived the button release")
	}
}

func TestMouseDragIgnoresStatic(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	input := addInputEntity(t, w)
	addStaticBox(t, w, 0, 0, 1, 1)

	ps := NewPhysicsSystem(0, 0, 10, 0)

	input.DragPressed = true
	input.DragHeld = true
	ps.Update(w)

	if ps.mouseJoint != nil {
		t.Fatal("drag attached to a static body")
	}
}

func TestDragEndsWhenBodyDestroyed(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	input := addInputEntity(t, w)
	box := addDynamicBox(t, w, 0, 0, 0.32)

	ps := NewPhysicsSystem(0, 0, 10, 0)

	input.DragPressed = true
	input.DragHeld = true
	ps.Update(w)
	if ps.mouseJoint == nil {
		t.Fatal("drag did not attach")
	}

	input.DragPressed = false
	w.DestroyEntity(box)
	ps.Update(w)

	if ps.mouseJoint != nil {
		t.Fatal("joint survived its body's destruction")
	}
	if ps.dragEntity != ecs.NilEntity {
		t.Fatalf("drag entity still set to %v", ps.dragEntity)
	}
}

func TestSyncWritesPosesBack(t *testing.T) {
	w := newTestWorld(1.0 / 60)
	box := addDynamicBox(t, w, 0, 5, 0.32)

	ps := NewPhysicsSystem(0, -9.81, 10, 0)
	for i := 0; i < 30; i++ {
		ps.Update(w)
	}

	transform, _ := ecs.Get(w, box, component.TransformComponent)
	if transform.Y >= 5 {
		t.Fatalf("transform never updated, y=%v", transform.Y)
	}
}
