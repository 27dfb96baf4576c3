package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quarterpie/tumble/scene"
)

// scenelint parses and validates scene files so a broken edit is
// caught before the game rejects it at reload time.
func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: scenelint [file ...]")
		fmt.Fprintln(flag.CommandLine.Output(), "with no arguments, lints the default scene")
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{filepath.Join(scene.Dir(), scene.DefaultName)}
	}

	failed := false
	for _, path := range paths {
		if err := lint(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func lint(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	spec, err := scene.ParseSpec(data)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	if spec.Spawn.Script != "" {
		if _, err := scene.LoadScript(spec.Spawn.Script); err != nil {
			return fmt.Errorf("spawn script: %w", err)
		}
	}

	fmt.Printf("%s: ok, scene %q spawns %d bodies onto a %gx%g slab\n",
		path, spec.Name, spec.Spawn.Count, spec.Ground.Size.Width, spec.Ground.Size.Height)
	return nil
}
