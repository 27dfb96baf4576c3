package system

import (
	"github.com/quarterpie/tumble/audio"
	"github.com/quarterpie/tumble/common"
	"github.com/quarterpie/tumble/ecs"
)

// maxImpactsPerTick caps how many voices one frame may start. A pile
// of bodies landing at once produces dozens of contacts in a single
// step and they all sound the same.
const maxImpactsPerTick = 4

// AudioSystem turns impact events from the physics step into thuds.
type AudioSystem struct {
	sounds *audio.Manager

	// fullSpeed is the relative contact speed, meters per second,
	// that maps to a full-strength voice.
	fullSpeed float64
}

func NewAudioSystem(sounds *audio.Manager) *AudioSystem {
	return &AudioSystem{
		sounds:    sounds,
		fullSpeed: 10,
	}
}

func (as *AudioSystem) Update(w *ecs.World) {
	played := 0
	for _, ev := range w.Events().Drain() {
		if ev.Type != ecs.EventImpact {
			continue
		}
		impact, ok := ev.Data.(ecs.ImpactEvent)
		if !ok {
			continue
		}
		if played >= maxImpactsPerTick {
			break
		}
		as.sounds.PlayImpact(common.Clamp(impact.Speed/as.fullSpeed, 0.05, 1))
		played++
	}
}
