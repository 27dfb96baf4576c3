package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
)

// InputSystem polls the keyboard and mouse once per tick and writes
// the result into the singleton Input component. WASD or the arrow
// keys pan, PageUp and PageDown zoom while held, the left mouse button
// grabs bodies.
type InputSystem struct {
	screenW float64
	screenH float64
}

func NewInputSystem(screenW, screenH float64) *InputSystem {
	return &InputSystem{screenW: screenW, screenH: screenH}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	panX, panY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		panX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		panX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		panY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		panY -= 1
	}

	view := CameraView(w, i.screenW, i.screenH)
	cx, cy := ebiten.CursorPosition()
	worldX, worldY := view.ScreenToWorld(float64(cx), float64(cy))

	ecs.ForEach(w, component.InputComponent, func(e ecs.Entity, input *component.Input) {
		input.PanX = panX
		input.PanY = panY
		input.ZoomIn = ebiten.IsKeyPressed(ebiten.KeyPageUp)
		input.ZoomOut = ebiten.IsKeyPressed(ebiten.KeyPageDown)
		input.CursorX = worldX
		input.CursorY = worldY
		input.DragPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		input.DragHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		input.RespawnPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
		input.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
		input.MutePressed = inpututil.IsKeyJustPressed(ebiten.KeyM)
		input.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	})
}
