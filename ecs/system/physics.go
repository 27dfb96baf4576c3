package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

const (
	collisionTypeBody cp.CollisionType = iota + 1
	collisionTypeStatic
)

const (
	// sleepThreshold lets the settled pile sleep instead of burning
	// solver time on bodies that stopped moving.
	sleepThreshold = 0.5

	grabRadius   = 0.05
	dragMaxForce = 50000.0
)

// dragErrorBias matches the chipmunk demo mouse joint: correct 15% of
// the positional error every 1/60th of a second.
var dragErrorBias = math.Pow(1.0-0.15, 60)

// PhysicsSystem owns the Chipmunk space. Each tick it materializes new
// rigid body entities into the space, feeds the mouse drag joint,
// steps the simulation by the world time step, and writes body poses
// back into transforms. Contacts faster than minImpact become impact
// events for downstream systems.
type PhysicsSystem struct {
	space         *cp.Space
	gravity       cp.Vector
	iterations    uint
	minImpact     float64
	handlersReady bool

	entities    map[ecs.Entity]*bodyInfo
	shapeOwners map[*cp.Shape]ecs.Entity
	warned      map[ecs.Entity]bool

	mouseBody  *cp.Body
	mouseJoint *cp.Constraint
	dragEntity ecs.Entity

	impacts []ecs.ImpactEvent
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// NewPhysicsSystem builds a space with the given gravity and solver
// iteration count. minImpactSpeed filters which contacts get reported
// as impact events; zero reports everything.
func NewPhysicsSystem(gravityX, gravityY float64, iterations uint, minImpactSpeed float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:     cp.Vector{X: gravityX, Y: gravityY},
		iterations:  iterations,
		minImpact:   minImpactSpeed,
		entities:    make(map[ecs.Entity]*bodyInfo),
		shapeOwners: make(map[*cp.Shape]ecs.Entity),
		warned:      make(map[ecs.Entity]bool),
		mouseBody:   cp.NewKinematicBody(),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = ps.iterations
	space.SleepTimeThreshold = sleepThreshold
	space.SetGravity(ps.gravity)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.updateMouseDrag(w)

	ps.space.Step(w.TimeStep())

	ps.syncTransforms(w)
	ps.flushImpacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	record := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if ok && sys != nil {
			sys.recordImpact(arb)
		}
		return true
	}

	bodyBody := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	bodyBody.UserData = ps
	bodyBody.BeginFunc = record

	bodyStatic := ps.space.NewCollisionHandler(collisionTypeBody, collisionTypeStatic)
	bodyStatic.UserData = ps
	bodyStatic.BeginFunc = record

	ps.handlersReady = true
}

func (ps *PhysicsSystem) recordImpact(arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	speed := shapeA.Body().Velocity().Sub(shapeB.Body().Velocity()).Length()
	if speed < ps.minImpact {
		return
	}

	point := shapeA.Body().Position()
	if set := arb.ContactPointSet(); set.Count > 0 {
		point = set.Points[0].PointA
	}

	ps.impacts = append(ps.impacts, ecs.ImpactEvent{
		A:     ps.shapeOwners[shapeA],
		B:     ps.shapeOwners[shapeB],
		Speed: speed,
		X:     point.X,
		Y:     point.Y,
	})
}

func (ps *PhysicsSystem) flushImpacts(w *ecs.World) {
	for _, impact := range ps.impacts {
		w.Events().Push(ecs.Event{Type: ecs.EventImpact, Data: impact})
	}
	ps.impacts = ps.impacts[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.warnOrphanShapes(w)

	for _, e := range w.Query(component.RigidBodyComponent.ID(), component.TransformComponent.ID()) {
		if _, exists := ps.entities[e]; exists {
			continue
		}
		rb, ok := ecs.Get(w, e, component.RigidBodyComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		info := ps.materialize(w, e, rb, transform)
		if info == nil {
			continue
		}
		ps.entities[e] = info
		ps.shapeOwners[info.shape] = e
		rb.Body = info.body
	}
}

func (ps *PhysicsSystem) materialize(w *ecs.World, e ecs.Entity, rb *component.RigidBody, transform *component.Transform) *bodyInfo {
	box, hasBox := ecs.Get(w, e, component.BoxShapeComponent)
	circle, hasCircle := ecs.Get(w, e, component.CircleShapeComponent)
	if !hasBox && !hasCircle {
		if !ps.warned[e] {
			log.Printf("PhysicsSystem: entity %v has a rigid body but no collision shape, skipping", e)
			ps.warned[e] = true
		}
		return nil
	}

	if rb.Kind == component.BodyStatic {
		var shape *cp.Shape
		if hasBox {
			bb := cp.BB{
				L: transform.X - box.Width/2,
				B: transform.Y - box.Height/2,
				R: transform.X + box.Width/2,
				T: transform.Y + box.Height/2,
			}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
			shape.SetFriction(box.Friction)
			shape.SetElasticity(box.Restitution)
			box.Shape = shape
		} else {
			shape = cp.NewCircle(ps.space.StaticBody, circle.Radius, cp.Vector{X: transform.X, Y: transform.Y})
			shape.SetFriction(circle.Friction)
			shape.SetElasticity(circle.Restitution)
			circle.Shape = shape
		}
		shape.SetCollisionType(collisionTypeStatic)
		ps.space.AddShape(shape)

		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	var mass, moment float64
	if hasBox {
		mass = box.Density * box.Width * box.Height
		moment = cp.MomentForBox(mass, box.Width, box.Height)
	} else {
		mass = circle.Density * math.Pi * circle.Radius * circle.Radius
		moment = cp.MomentForCircle(mass, 0, circle.Radius, cp.Vector{})
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	if hasBox {
		shape = cp.NewBox(body, box.Width, box.Height, 0)
		shape.SetFriction(box.Friction)
		shape.SetElasticity(box.Restitution)
		box.Shape = shape
	} else {
		shape = cp.NewCircle(body, circle.Radius, cp.Vector{})
		shape.SetFriction(circle.Friction)
		shape.SetElasticity(circle.Restitution)
		circle.Shape = shape
	}
	shape.SetCollisionType(collisionTypeBody)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

// warnOrphanShapes logs, once per entity, shapes that will never enter
// the space because their entity carries no rigid body.
func (ps *PhysicsSystem) warnOrphanShapes(w *ecs.World) {
	check := func(e ecs.Entity, kind string) {
		if ecs.Has(w, e, component.RigidBodyComponent) || ps.warned[e] {
			return
		}
		log.Printf("PhysicsSystem: entity %v has a %s shape but no rigid body, ignoring", e, kind)
		ps.warned[e] = true
	}
	ecs.ForEach(w, component.BoxShapeComponent, func(e ecs.Entity, _ *component.BoxShape) {
		check(e, "box")
	})
	ecs.ForEach(w, component.CircleShapeComponent, func(e ecs.Entity, _ *component.CircleShape) {
		check(e, "circle")
	})
}

func (ps *PhysicsSystem) updateMouseDrag(w *ecs.World) {
	input, ok := firstInput(w)
	if !ok {
		return
	}

	// The pointer body trails the cursor with a velocity that closes
	// the gap, the chipmunk demo mouse idiom. It never joins the space;
	// the drag joint still sees its velocity.
	cursor := cp.Vector{X: input.CursorX, Y: input.CursorY}
	next := ps.mouseBody.Position().Add(cursor.Sub(ps.mouseBody.Position()).Mult(0.25))
	ps.mouseBody.SetVelocityVector(next.Sub(ps.mouseBody.Position()).Mult(1 / w.TimeStep()))
	ps.mouseBody.SetPosition(next)

	if input.DragPressed && ps.mouseJoint == nil {
		ps.beginDrag(cursor)
	}
	if !input.DragHeld {
		ps.endDrag()
	}
}

func (ps *PhysicsSystem) beginDrag(cursor cp.Vector) {
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: cp.ALL_CATEGORIES}
	info := ps.space.PointQueryNearest(cursor, grabRadius, filter)
	if info == nil || info.Shape == nil {
		return
	}
	owner, ok := ps.shapeOwners[info.Shape]
	if !ok {
		return
	}
	state := ps.entities[owner]
	if state == nil || state.static {
		return
	}

	state.body.Activate()
	joint := cp.NewPivotJoint2(ps.mouseBody, state.body, cp.Vector{}, state.body.WorldToLocal(cursor))
	joint.SetMaxForce(dragMaxForce)
	joint.SetErrorBias(dragErrorBias)
	ps.space.AddConstraint(joint)
	ps.mouseJoint = joint
	ps.dragEntity = owner
}

func (ps *PhysicsSystem) endDrag() {
	if ps.mouseJoint == nil {
		return
	}
	ps.space.RemoveConstraint(ps.mouseJoint)
	ps.mouseJoint = nil
	ps.dragEntity = ecs.NilEntity
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent, component.TransformComponent, func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		if rb.Body == nil || rb.Kind == component.BodyStatic {
			return
		}
		pos := rb.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = rb.Body.Angle()
	})
}

// cleanupEntities removes space state for entities that died or lost
// their rigid body since last tick.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.RigidBodyComponent) {
			continue
		}

		if e == ps.dragEntity {
			ps.endDrag()
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapeOwners, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		delete(ps.warned, e)
	}
}
