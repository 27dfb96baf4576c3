package component

// Input stores the per-tick input state polled by the input system.
// One singleton entity carries it; downstream systems only read.
type Input struct {
	PanX float64 // -1, 0, or 1
	PanY float64

	ZoomIn  bool // held
	ZoomOut bool

	// Cursor position in world space, projected through the camera.
	CursorX float64
	CursorY float64

	DragPressed bool // left button went down this tick
	DragHeld    bool

	RespawnPressed bool
	CopyPressed    bool
	MutePressed    bool
	QuitPressed    bool
}

var InputComponent = NewComponentKind[Input]()
