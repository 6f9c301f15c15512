package config

import "path/filepath"

// UccConfig describes the UnrealScript compiler environment.
type UccConfig struct {
	Path     string    `yaml:"path" toml:"path"`
	Git      string    `yaml:"git" toml:"git"`
	Packages []Package `yaml:"packages" toml:"packages"`
}

// Package is an UnrealScript package compiled by ucc.
type Package struct {
	Name string `yaml:"name" toml:"name"`
	Git  string `yaml:"git" toml:"git"`
}

// PackageDir is where a package's sources are checked out.
func (u UccConfig) PackageDir(name string) string {
	return filepath.Join(u.Path, name)
}

// PackageNames returns the package names in compile order.
func (u UccConfig) PackageNames() []string {
	names := make([]string, len(u.Packages))
	for i, p := range u.Packages {
		names[i] = p.Name
	}
	return names
}

// DefaultUccConfig returns the built-in ucc environment.
func DefaultUccConfig() UccConfig {
	return UccConfig{
		Path: "/home/sergei/swat4ucc/",
		Git:  "git@home:public/swat4#origin/ucc",
		Packages: []Package{
			{Name: "Utils", Git: "git@home:swat/swat-utils"},
			{Name: "Julia", Git: "git@home:swat/swat-julia"},
			{Name: "JuliaChat", Git: "git@home:swat/swat-julia-chat"},
		},
	}
}
