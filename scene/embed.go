package scene

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scene.yaml
var scenesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// DefaultName is the scene loaded when no -scene flag is given.
const DefaultName = "scene.yaml"

// Load reads a scene file by name. A copy under scene/ on disk wins
// over the embedded one so edits apply without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanScenePath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scenesFS.ReadFile(clean)
}

// LoadScript reads a spawn script by name, disk copy first.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

// Dir returns the on-disk scene directory watched for live edits.
func Dir() string {
	return "scene"
}

// ScriptsDir returns the on-disk spawn script directory.
func ScriptsDir() string {
	return filepath.Join("scene", "scripts")
}

func cleanScenePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "scene/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "scene/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scene/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPath(clean string) string {
	return filepath.Join("scene", filepath.FromSlash(clean))
}
