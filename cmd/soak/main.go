package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/quarterpie/tumble/ecs"
	"github.com/quarterpie/tumble/ecs/component"
	"github.com/quarterpie/tumble/ecs/entity"
	"github.com/quarterpie/tumble/ecs/system"
	"github.com/quarterpie/tumble/scene"
)

// soak runs a scene headless for a fixed number of ticks and reports
// where the pile ended up. Handy for checking a scene settles instead
// of jittering or leaking bodies off the slab.
func main() {
	sceneName := flag.String("scene", scene.DefaultName, "scene file name, embedded or under scene/ on disk")
	ticks := flag.Int("ticks", 3600, "simulation ticks to run at 60 per second")
	seed := flag.Int64("seed", 0, "override the scene seed (0 keeps the scene value)")
	flag.Parse()

	spec, err := scene.LoadSpec(*sceneName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = *seed
	}

	w := ecs.NewWorld()
	w.SetTimeStep(1.0 / 60.0)

	bodies, err := entity.BuildScene(w, spec)
	if err != nil {
		log.Fatal(err)
	}

	physics := system.NewPhysicsSystem(
		spec.Physics.Gravity.X,
		spec.Physics.Gravity.Y,
		spec.Physics.Iterations,
		spec.Audio.MinImpactSpeed,
	)
	counter := &impactCounter{}
	scheduler := ecs.NewScheduler(physics, counter)

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		scheduler.Update(w)
	}
	elapsed := time.Since(start)

	minY := math.Inf(1)
	maxY := math.Inf(-1)
	moving := 0
	ecs.ForEach2(w, component.RigidBodyComponent, component.TransformComponent,
		func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
			if rb.Kind != component.BodyDynamic {
				return
			}
			minY = math.Min(minY, transform.Y)
			maxY = math.Max(maxY, transform.Y)
			if rb.Body != nil && rb.Body.Velocity().Length() > 0.05 {
				moving++
			}
		})

	log.Printf("soak: %d bodies, %d ticks in %v (%.0f ticks/sec)",
		bodies, *ticks, elapsed.Round(time.Millisecond), float64(*ticks)/elapsed.Seconds())
	log.Printf("soak: %d impacts, %d bodies still moving, y range [%.2f, %.2f]",
		counter.impacts, moving, minY, maxY)
}

type impactCounter struct {
	impacts int
}

func (c *impactCounter) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		if ev.Type == ecs.EventImpact {
			c.impacts++
		}
	}
}
