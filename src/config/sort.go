package config

import "sort"

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KitNames returns the configured kit names, sorted.
func (c *Config) KitNames() []string {
	return sortedKeys(c.Kits)
}
