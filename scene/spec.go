package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is the full description of a sandbox scene: the physics space,
// the static ground, the falling bodies, and the camera that watches
// them. Specs load from YAML, embedded by default with a disk override
// for live editing.
type Spec struct {
	Name    string      `yaml:"name"`
	Seed    int64       `yaml:"seed"`
	Physics PhysicsSpec `yaml:"physics"`
	Ground  GroundSpec  `yaml:"ground"`
	Walls   WallsSpec   `yaml:"walls"`
	Spawn   SpawnSpec   `yaml:"spawn"`
	Camera  CameraSpec  `yaml:"camera"`
	Audio   AudioSpec   `yaml:"audio"`
	Session SessionSpec `yaml:"session"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity    VecSpec `yaml:"gravity"`
	Iterations uint    `yaml:"iterations"`
}

// GroundSpec is the static slab the rain of bodies lands on. Position
// is the slab center, Size its full extents.
type GroundSpec struct {
	Position VecSpec  `yaml:"position"`
	Size     SizeSpec `yaml:"size"`
	Friction float64  `yaml:"friction"`
}

// WallsSpec optionally fences the pile in with two thin static boxes
// at x = ±HalfWidth, standing on top of the ground slab.
type WallsSpec struct {
	Enabled   bool    `yaml:"enabled"`
	HalfWidth float64 `yaml:"half_width"`
	Height    float64 `yaml:"height"`
}

type BoxSpec struct {
	Size        float64 `yaml:"size"`
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

type CircleSpec struct {
	Radius      float64 `yaml:"radius"`
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

// SpawnSpec describes the column of dynamic bodies dropped into the
// scene. Script optionally names a spawn script under scene/scripts
// that replaces the built-in layout.
type SpawnSpec struct {
	Count   int        `yaml:"count"`
	Script  string     `yaml:"script"`
	JitterX float64    `yaml:"jitter_x"`
	StartY  float64    `yaml:"start_y"`
	StepY   float64    `yaml:"step_y"`
	Box     BoxSpec    `yaml:"box"`
	Circle  CircleSpec `yaml:"circle"`
}

type CameraSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Zoom      float64 `yaml:"zoom"`
	MoveSpeed float64 `yaml:"move_speed"`
	ZoomIn    float64 `yaml:"zoom_in"`
	ZoomOut   float64 `yaml:"zoom_out"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
}

type AudioSpec struct {
	Enabled        bool    `yaml:"enabled"`
	Volume         float64 `yaml:"volume"`
	MinImpactSpeed float64 `yaml:"min_impact_speed"`
}

type SessionSpec struct {
	RememberCamera bool `yaml:"remember_camera"`
}

// LoadSpec loads, parses, and validates a scene file by name.
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	spec, err := ParseSpec(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", name, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// ParseSpec unmarshals a scene spec without validating it.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks every numeric field the simulation depends on.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("scene: nil spec")
	}
	if s.Physics.Iterations == 0 {
		return fmt.Errorf("scene: physics.iterations must be at least 1")
	}
	if s.Ground.Size.Width <= 0 || s.Ground.Size.Height <= 0 {
		return fmt.Errorf("scene: ground.size must be positive, got %vx%v", s.Ground.Size.Width, s.Ground.Size.Height)
	}
	if s.Ground.Friction < 0 {
		return fmt.Errorf("scene: ground.friction must not be negative, got %v", s.Ground.Friction)
	}
	if s.Walls.Enabled {
		if s.Walls.HalfWidth <= 0 {
			return fmt.Errorf("scene: walls.half_width must be positive, got %v", s.Walls.HalfWidth)
		}
		if s.Walls.Height <= 0 {
			return fmt.Errorf("scene: walls.height must be positive, got %v", s.Walls.Height)
		}
	}
	if err := s.Spawn.validate(); err != nil {
		return err
	}
	if err := s.Camera.validate(); err != nil {
		return err
	}
	if s.Audio.Enabled {
		if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
			return fmt.Errorf("scene: audio.volume must be within [0, 1], got %v", s.Audio.Volume)
		}
		if s.Audio.MinImpactSpeed < 0 {
			return fmt.Errorf("scene: audio.min_impact_speed must not be negative, got %v", s.Audio.MinImpactSpeed)
		}
	}
	return nil
}

func (s SpawnSpec) validate() error {
	if s.Count < 0 {
		return fmt.Errorf("scene: spawn.count must not be negative, got %d", s.Count)
	}
	if s.JitterX < 0 {
		return fmt.Errorf("scene: spawn.jitter_x must not be negative, got %v", s.JitterX)
	}
	if s.StepY < 0 {
		return fmt.Errorf("scene: spawn.step_y must not be negative, got %v", s.StepY)
	}
	if s.Box.Size <= 0 {
		return fmt.Errorf("scene: spawn.box.size must be positive, got %v", s.Box.Size)
	}
	if s.Box.Density <= 0 {
		return fmt.Errorf("scene: spawn.box.density must be positive, got %v", s.Box.Density)
	}
	if s.Box.Friction < 0 || s.Box.Restitution < 0 {
		return fmt.Errorf("scene: spawn.box friction and restitution must not be negative")
	}
	if s.Circle.Radius <= 0 {
		return fmt.Errorf("scene: spawn.circle.radius must be positive, got %v", s.Circle.Radius)
	}
	if s.Circle.Density <= 0 {
		return fmt.Errorf("scene: spawn.circle.density must be positive, got %v", s.Circle.Density)
	}
	if s.Circle.Friction < 0 || s.Circle.Restitution < 0 {
		return fmt.Errorf("scene: spawn.circle friction and restitution must not be negative")
	}
	return nil
}

func (c CameraSpec) validate() error {
	if c.Zoom <= 0 {
		return fmt.Errorf("scene: camera.zoom must be positive, got %v", c.Zoom)
	}
	if c.MoveSpeed < 0 {
		return fmt.Errorf("scene: camera.move_speed must not be negative, got %v", c.MoveSpeed)
	}
	if c.ZoomIn <= 0 || c.ZoomOut <= 0 {
		return fmt.Errorf("scene: camera zoom factors must be positive, got %v and %v", c.ZoomIn, c.ZoomOut)
	}
	if c.MinZoom <= 0 {
		return fmt.Errorf("scene: camera.min_zoom must be positive, got %v", c.MinZoom)
	}
	if c.MaxZoom < c.MinZoom {
		return fmt.Errorf("scene: camera.max_zoom %v is below camera.min_zoom %v", c.MaxZoom, c.MinZoom)
	}
	if c.Zoom < c.MinZoom || c.Zoom > c.MaxZoom {
		return fmt.Errorf("scene: camera.zoom %v is outside [%v, %v]", c.Zoom, c.MinZoom, c.MaxZoom)
	}
	return nil
}
