package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics engine treats a body.
type BodyKind int

const (
	// BodyStatic bodies never move. Their shapes hang off the space's
	// shared static body.
	BodyStatic BodyKind = iota
	// BodyDynamic bodies get mass and moment from their shape and are
	// integrated every step.
	BodyDynamic
)

func (k BodyKind) String() string {
	if k == BodyStatic {
		return "static"
	}
	return "dynamic"
}

// RigidBody marks an entity as physics-driven. Body stays nil until
// the physics system materializes the entity into its space.
type RigidBody struct {
	Kind BodyKind
	Body *cp.Body
}

var RigidBodyComponent = NewComponentKind[RigidBody]()
