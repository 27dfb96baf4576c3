package session

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	stateObject   = "session"
	stateProperty = "last"
)

// State is what survives between runs: where the camera ended up and
// whether sound was muted.
type State struct {
	CameraX float64 `yaml:"camera_x"`
	CameraY float64 `yaml:"camera_y"`
	Zoom    float64 `yaml:"zoom"`
	Muted   bool    `yaml:"muted"`
}

// Manager persists session state through the platform data directory.
// When storage is unavailable it degrades to memory only: loads find
// nothing and saves are dropped.
type Manager struct {
	store *gdata.Manager
}

// Open creates a manager backed by the platform data dir for appName.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("Session: storage unavailable, state will not persist: %v", err)
		return &Manager{}
	}
	return &Manager{store: store}
}

// Load returns the saved state, or nil when none has been saved.
func (m *Manager) Load() (*State, error) {
	if m == nil || m.store == nil {
		return nil, nil
	}
	if !m.store.ObjectPropExists(stateObject, stateProperty) {
		return nil, nil
	}
	data, err := m.store.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		return nil, fmt.Errorf("session: load state: %w", err)
	}
	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("session: unmarshal state: %w", err)
	}
	return &state, nil
}

// Save persists the state. A degraded manager drops it without error.
func (m *Manager) Save(state State) error {
	if m == nil || m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("session: marshal state: %w", err)
	}
	if err := m.store.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		return fmt.Errorf("session: save state: %w", err)
	}
	return nil
}
