package config

// DistConfig holds distribution archive metadata.
// Relative extras are resolved against paths.here.
type DistConfig struct {
	Version string   `yaml:"version" toml:"version"`
	Extra   []string `yaml:"extra" toml:"extra"`
}

// DefaultDistConfig returns the built-in distribution metadata.
func DefaultDistConfig() DistConfig {
	return DistConfig{
		Version: "1.0.0",
		Extra:   []string{"LICENSE", "README.html", "CHANGES.html"},
	}
}
