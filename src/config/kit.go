package config

import "path/filepath"

// Kit describes one game variant the server can be deployed as.
type Kit struct {
	Mod     string `yaml:"mod" toml:"mod"`         // mod directory, holds compiled packages
	Content string `yaml:"content" toml:"content"` // content directory, holds the server binary
	Server  string `yaml:"server" toml:"server"`   // dedicated server executable
	INI     string `yaml:"ini" toml:"ini"`         // server ini filename
}

// SystemDir is the content System directory under a server root.
func (k Kit) SystemDir(root string) string {
	return filepath.Join(root, k.Content, "System")
}

// ModSystemDir is the mod System directory under a server root.
func (k Kit) ModSystemDir(root string) string {
	return filepath.Join(root, k.Mod, "System")
}

// ExecutablePath is the dedicated server binary under a server root.
func (k Kit) ExecutablePath(root string) string {
	return filepath.Join(k.SystemDir(root), k.Server)
}

// INIPath is the server ini file under a server root.
func (k Kit) INIPath(root string) string {
	return filepath.Join(k.SystemDir(root), k.INI)
}

// DefaultKits returns the vanilla and expansion kits.
func DefaultKits() map[string]Kit {
	return map[string]Kit{
		"swat4": {
			Mod:     "Mod",
			Content: "Content",
			Server:  "Swat4DedicatedServer.exe",
			INI:     "Swat4DedicatedServer.ini",
		},
		"swat4exp": {
			Mod:     "ModX",
			Content: "ContentExpansion",
			Server:  "Swat4XDedicatedServer.exe",
			INI:     "Swat4XDedicatedServer.ini",
		},
	}
}
