package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vertti/icpreflight/pkg/dfxcheck"
	"github.com/vertti/icpreflight/pkg/groupcheck"
)

// Layout lists what a deployable project must contain.
type Layout struct {
	Config    string   `yaml:"config"`    // primary config file, e.g., dfx.json
	Canisters []string `yaml:"canisters"` // required keys under "canisters"
	Groups    []Group  `yaml:"groups"`    // directory groups, checked in order
}

// Group is a directory and the files it must contain.
type Group struct {
	Dir   string            `yaml:"dir"`
	Label string            `yaml:"label"`
	Files []groupcheck.File `yaml:"files"`
}

// DefaultLayout is the layout of an Internet Computer project with a Vite
// frontend and a Motoko backend.
func DefaultLayout() Layout {
	return Layout{
		Config:    dfxcheck.DefaultFile,
		Canisters: append([]string(nil), dfxcheck.DefaultCanisters...),
		Groups: []Group{
			{
				Dir:   "frontend",
				Label: "frontend",
				Files: []groupcheck.File{
					{Path: "frontend/index.html", Description: "Frontend HTML entry point"},
					{Path: "frontend/src/main.tsx", Description: "Frontend TypeScript entry point"},
					{Path: "frontend/vite.config.js", Description: "Vite configuration"},
					{Path: "frontend/tsconfig.json", Description: "TypeScript configuration"},
				},
			},
			{
				Dir:   "backend",
				Label: "backend",
				Files: []groupcheck.File{
					{Path: "backend/main.mo", Description: "Backend Motoko source file"},
				},
			},
		},
	}
}

// LoadLayout reads a YAML layout file. Fields left empty keep their defaults.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()

	data, err := os.ReadFile(path) //nolint:gosec // intentional: layout path from user config
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}

	var override Layout
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Layout{}, fmt.Errorf("parse layout %s: %w", path, err)
	}

	if override.Config != "" {
		layout.Config = override.Config
	}
	if override.Canisters != nil {
		layout.Canisters = override.Canisters
	}
	if override.Groups != nil {
		layout.Groups = override.Groups
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", path, err)
	}
	return layout, nil
}

// Validate reports structural problems in the layout itself.
func (l Layout) Validate() error {
	var errs []error
	for i, g := range l.Groups {
		if g.Dir == "" {
			errs = append(errs, fmt.Errorf("group %d: dir is required", i))
		}
		for j, f := range g.Files {
			if f.Path == "" {
				errs = append(errs, fmt.Errorf("group %q file %d: path is required", g.Dir, j))
			}
		}
	}
	return errors.Join(errs...)
}
