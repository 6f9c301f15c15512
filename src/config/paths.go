package config

import (
	"path/filepath"
	"strings"
)

// Paths is the table of local filesystem locations.
// Dist and Compiled default to children of Here.
type Paths struct {
	Here     string `yaml:"here" toml:"here"`
	Dist     string `yaml:"dist" toml:"dist"`
	Compiled string `yaml:"compiled" toml:"compiled"`
}

// PathEntry is one row of the path table.
type PathEntry struct {
	Name string
	Path string
}

// Child joins name under Here.
func (p Paths) Child(name string) string {
	return filepath.Join(p.Here, name)
}

// Table returns the symbolic path names in declaration order.
func (p Paths) Table() []PathEntry {
	return []PathEntry{
		{Name: "here", Path: p.Here},
		{Name: "dist", Path: p.Dist},
		{Name: "compiled", Path: p.Compiled},
	}
}

// resolve makes Here absolute and places relative or unset Dist and
// Compiled under it.
func (p *Paths) resolve() {
	if p.Here != "" {
		if abs, err := filepath.Abs(p.Here); err == nil {
			p.Here = abs
		}
	}
	p.Dist = p.under(p.Dist, "dist")
	p.Compiled = p.under(p.Compiled, "compiled")
}

func (p Paths) under(path, fallback string) string {
	switch {
	case path == "":
		return p.Child(fallback)
	case filepath.IsAbs(path):
		return path
	default:
		return p.Child(path)
	}
}

// isChild reports whether path lies strictly below parent.
func isChild(parent, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
