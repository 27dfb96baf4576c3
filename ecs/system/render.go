package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/quarterpie/tumble/ecs"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// RenderSystem draws the physics space as debug geometry: shape
// outlines, the drag joint, and contact points, projected through the
// camera. There is no sprite pass; the geometry is the scene.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw renders one frame. It runs from the game's draw callback, after
// this tick's systems have updated the world.
func (rs *RenderSystem) Draw(w *ecs.World, space *cp.Space, screen *ebiten.Image) {
	if rs == nil || w == nil || space == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()
	drawer := &debugDrawer{
		screen:     screen,
		view:       CameraView(w, float64(bounds.Dx()), float64(bounds.Dy())),
		staticBody: space.StaticBody,
	}
	cp.DrawSpace(space, drawer)
}

type debugDrawer struct {
	screen     *ebiten.Image
	view       View
	staticBody *cp.Body
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	// radius line so spin is visible
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	// dots are screen-size crosses, not world-size
	sx, sy := d.view.WorldToScreen(pos.X, pos.Y)
	half := size / 2
	c := toNRGBA(fill)
	ebitenutil.DrawLine(d.screen, sx-half, sy, sx+half, sy, c)
	ebitenutil.DrawLine(d.screen, sx, sy-half, sx, sy+half, c)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS | cp.DRAW_COLLISION_POINTS
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	body := shape.Body()
	switch {
	case body == d.staticBody:
		return cp.FColor{R: 0.3, G: 0.5, B: 0.9, A: 0.8}
	case body.IsSleeping():
		return cp.FColor{R: 0.4, G: 0.4, B: 0.4, A: 0.7}
	default:
		return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	}
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func (d *debugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.view.WorldToScreen(a.X, a.Y)
	x2, y2 := d.view.WorldToScreen(b.X, b.Y)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(color))
}

func (d *debugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	if len(verts) == 0 {
		return
	}
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *debugDrawer) drawCircle(center cp.Vector, radius float64, color cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, color)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
