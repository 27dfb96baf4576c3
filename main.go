package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quarterpie/tumble/scene"
	"github.com/quarterpie/tumble/session"
)

func main() {
	sceneName := flag.String("scene", scene.DefaultName, "scene file name, embedded or under scene/ on disk")
	seed := flag.Int64("seed", 0, "override the scene seed (0 keeps the scene value)")
	fresh := flag.Bool("fresh", false, "ignore the saved camera state")
	mute := flag.Bool("mute", false, "start muted")
	debug := flag.Bool("debug", false, "show frame and body counters")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	spec, err := scene.LoadSpec(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}

	sessions := session.Open("tumble")
	var restored *session.State
	if spec.Session.RememberCamera && !*fresh {
		state, err := sessions.Load()
		if err != nil {
			log.Printf("Session: ignoring saved state: %v", err)
		} else {
			restored = state
		}
	}

	muted := *mute
	if restored != nil && restored.Muted {
		muted = true
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tumble")

	game, err := NewGame(Options{
		SceneName: *sceneName,
		Spec:      spec,
		Restored:  restored,
		Debug:     *debug,
		Muted:     muted,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if spec.Session.RememberCamera {
		if state, ok := game.CameraState(); ok {
			if err := sessions.Save(state); err != nil {
				log.Printf("Session: save failed: %v", err)
			}
		}
	}
	game.Close()
}
