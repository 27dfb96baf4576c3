package component

import "github.com/jakecoffman/cp"

// BoxShape is an axis-aligned box collider centered on the entity's
// transform. Width and Height are full extents in meters. Density is
// mass per square meter; the physics system derives mass and moment
// from it for dynamic bodies.
type BoxShape struct {
	Width       float64
	Height      float64
	Density     float64
	Friction    float64
	Restitution float64
	Shape       *cp.Shape
}

var BoxShapeComponent = NewComponentKind[BoxShape]()

// CircleShape is a circle collider centered on the entity's transform.
type CircleShape struct {
	Radius      float64
	Density     float64
	Friction    float64
	Restitution float64
	Shape       *cp.Shape
}

var CircleShapeComponent = NewComponentKind[CircleShape]()
