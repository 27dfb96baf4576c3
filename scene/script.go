package scene

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ShapeKind selects the collider a spawned body gets.
type ShapeKind int

const (
	KindBox ShapeKind = iota
	KindCircle
)

func (k ShapeKind) String() string {
	if k == KindCircle {
		return "circle"
	}
	return "box"
}

// Placement is one spawned body: where it starts and which shape it
// carries. Sizes and materials come from the spawn spec.
type Placement struct {
	X    float64
	Y    float64
	Kind ShapeKind
}

// Placements returns the spawn layout for a scene. When the spec names
// a script the scripted layout wins; a broken script logs and falls
// back to the built-in layout so a live edit can't kill the sandbox.
func Placements(spawn SpawnSpec, seed int64) []Placement {
	if spawn.Script == "" {
		return Layout(spawn, seed)
	}
	placements, err := ScriptLayout(spawn, seed)
	if err != nil {
		log.Printf("Scene: spawn script %s failed, using built-in layout: %v", spawn.Script, err)
		return Layout(spawn, seed)
	}
	return placements
}

// Layout builds the default column: bodies stacked StepY apart from
// StartY upward, x jittered within ±JitterX, shapes alternating box
// then circle.
func Layout(spawn SpawnSpec, seed int64) []Placement {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Placement, 0, spawn.Count)
	for i := 0; i < spawn.Count; i++ {
		kind := KindBox
		if i%2 == 1 {
			kind = KindCircle
		}
		out = append(out, Placement{
			X:    (rng.Float64()*2 - 1) * spawn.JitterX,
			Y:    spawn.StartY + spawn.StepY*float64(i),
			Kind: kind,
		})
	}
	return out
}

// ScriptLayout runs the named spawn script and decodes the `bodies`
// global it must produce: an array of {x, y, kind} maps where kind is
// "box" or "circle".
func ScriptLayout(spawn SpawnSpec, seed int64) ([]Placement, error) {
	src, err := LoadScript(spawn.Script)
	if err != nil {
		return nil, fmt.Errorf("scene: load script %s: %w", spawn.Script, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("__count", spawn.Count)
	_ = script.Add("__seed", seed)
	_ = script.Add("__jitter", spawn.JitterX)
	_ = script.Add("__start_y", spawn.StartY)
	_ = script.Add("__step_y", spawn.StepY)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("scene: run script %s: %w", spawn.Script, err)
	}
	if !compiled.IsDefined("bodies") {
		return nil, fmt.Errorf("scene: script %s did not define bodies", spawn.Script)
	}

	raw := compiled.Get("bodies").Array()
	out := make([]Placement, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("scene: script %s: bodies[%d] is not a map", spawn.Script, i)
		}
		p := Placement{
			X: toFloat(m["x"]),
			Y: toFloat(m["y"]),
		}
		switch kind, _ := m["kind"].(string); kind {
		case "circle":
			p.Kind = KindCircle
		case "box", "":
			p.Kind = KindBox
		default:
			return nil, fmt.Errorf("scene: script %s: bodies[%d] has unknown kind %q", spawn.Script, i, kind)
		}
		out = append(out, p)
	}
	return out, nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
