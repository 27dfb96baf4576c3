package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/quarterpie/tumble/audio"
	"github.com/quarterpie/tumble/common"
	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/ecs/entity"
	"github.com/quarterpie/tumble/ecs/system"
	"github.com/quarterpie/tumble/scene"
	"github.com/quarterpie/tumble/session"
)

const (
	baseWidth  = 1280
	baseHeight = 800
)

var backgroundColor = color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}

// Options configures a new game.
type Options struct {
	SceneName string
	Spec      *scene.Spec
	Restored  *session.State
	Debug     bool
	Muted     bool
}

type Game struct {
	frames int

	sceneName string
	spec      *scene.Spec
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	sounds    *audio.Manager
	watcher   *scene.Watcher
	ui        *ebitenui.UI

	camera ecs.Entity
	input  ecs.Entity

	bodies int
	muted  bool
	debug  bool
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		sceneName: opts.SceneName,
		spec:      opts.Spec,
		world:     ecs.NewWorld(),
		render:    system.NewRenderSystem(),
		muted:     opts.Muted,
		debug:     opts.Debug,
	}

	cameraSpec := opts.Spec.Camera
	if opts.Restored != nil {
		cameraSpec.X = opts.Restored.CameraX
		cameraSpec.Y = opts.Restored.CameraY
		if opts.Restored.Zoom > 0 {
			cameraSpec.Zoom = common.Clamp(opts.Restored.Zoom, cameraSpec.MinZoom, cameraSpec.MaxZoom)
		}
	}

	camera, err := entity.NewCamera(g.world, cameraSpec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.camera = camera

	input, err := entity.NewInput(g.world)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.input = input

	bodies, err := entity.BuildScene(g.world, opts.Spec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.bodies = bodies
	log.Printf("Game: scene %q built with %d bodies", opts.Spec.Name, bodies)

	if opts.Spec.Audio.Enabled {
		sounds := audio.NewManager(opts.Spec.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			log.Printf("Game: audio unavailable: %v", err)
		} else {
			sounds.SetMuted(g.muted)
			g.sounds = sounds
		}
	}

	g.wireSystems(opts.Spec)
	g.ui = newInstructionsUI()

	watcher, err := scene.NewWatcher(scene.Dir(), scene.ScriptsDir())
	if err != nil {
		log.Printf("Game: live scene reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

// wireSystems builds the physics space and the tick schedule for the
// given spec. Rebuilding the scene swaps both out wholesale; the old
// space goes away with the system that owned it.
func (g *Game) wireSystems(spec *scene.Spec) {
	g.physics = system.NewPhysicsSystem(
		spec.Physics.Gravity.X,
		spec.Physics.Gravity.Y,
		spec.Physics.Iterations,
		spec.Audio.MinImpactSpeed,
	)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(baseWidth, baseHeight),
		system.NewCameraSystem(),
		g.physics,
		system.NewAudioSystem(g.sounds),
	)
}

func (g *Game) Update() error {
	g.frames++

	if tps := ebiten.TPS(); tps > 0 {
		g.world.SetTimeStep(1.0 / float64(tps))
	}

	g.pollWatcher()
	g.scheduler.Update(g.world)

	if e, ok := g.world.First(component.InputComponent.ID()); ok {
		if input, okGet := ecs.Get(g.world, e, component.InputComponent); okGet {
			if err := g.handleActions(input); err != nil {
				return err
			}
		}
	}

	g.ui.Update()
	return nil
}

func (g *Game) handleActions(input *component.Input) error {
	if input.QuitPressed {
		return ebiten.Termination
	}
	if input.RespawnPressed {
		g.rebuildScene(g.spec)
	}
	if input.MutePressed {
		g.muted = !g.muted
		g.sounds.SetMuted(g.muted)
		log.Printf("Game: sound muted: %v", g.muted)
	}
	if input.CopyPressed {
		if err := copyToClipboard(buildReport(g.world, g.spec)); err != nil {
			log.Printf("Game: copy report: %v", err)
		} else {
			log.Printf("Game: scene report copied to clipboard")
		}
	}
	return nil
}

// pollWatcher drains pending file events without blocking the tick and
// reloads the scene once if anything relevant changed.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := ""
	for {
		select {
		case path := <-g.watcher.Events:
			changed = path
		case err := <-g.watcher.Errors:
			log.Printf("Game: scene watch: %v", err)
		default:
			if changed != "" {
				log.Printf("Game: %s changed, reloading scene", changed)
				g.reloadScene()
			}
			return
		}
	}
}

func (g *Game) reloadScene() {
	spec, err := scene.LoadSpec(g.sceneName)
	if err != nil {
		log.Printf("Game: keeping current scene: %v", err)
		return
	}
	g.rebuildScene(spec)
}

// rebuildScene tears down every physics entity and builds the spec
// fresh. The camera and input entities stay, so the view survives a
// respawn or reload.
func (g *Game) rebuildScene(spec *scene.Spec) {
	entity.ClearScene(g.world)

	bodies, err := entity.BuildScene(g.world, spec)
	if err != nil {
		log.Printf("Game: rebuild scene: %v", err)
	}
	g.bodies = bodies
	g.spec = spec

	if cam, ok := ecs.Get(g.world, g.camera, component.CameraComponent); ok {
		cam.MoveSpeed = spec.Camera.MoveSpeed
		cam.ZoomIn = spec.Camera.ZoomIn
		cam.ZoomOut = spec.Camera.ZoomOut
		cam.MinZoom = spec.Camera.MinZoom
		cam.MaxZoom = spec.Camera.MaxZoom
		cam.Zoom = common.Clamp(cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}

	g.wireSystems(spec)
	log.Printf("Game: scene %q rebuilt with %d bodies", spec.Name, bodies)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.render.Draw(g.world, g.physics.Space(), screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d", g.frames, ebiten.ActualFPS(), g.bodies), 10, 80)
	}
}

// CameraState captures what the session remembers between runs.
func (g *Game) CameraState() (session.State, bool) {
	transform, okT := ecs.Get(g.world, g.camera, component.TransformComponent)
	cam, okC := ecs.Get(g.world, g.camera, component.CameraComponent)
	if !okT || !okC {
		return session.State{}, false
	}
	return session.State{
		CameraX: transform.X,
		CameraY: transform.Y,
		Zoom:    cam.Zoom,
		Muted:   g.muted,
	}, true
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Game: close scene watcher: %v", err)
		}
	}
	g.sounds.Cleanup()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
