package component

// Transform is an entity's pose in world space. Units are meters, the
// Y axis points up, and Rotation is counterclockwise radians.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponentKind[Transform]()
