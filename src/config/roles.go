package config

import "sort"

// Roles maps a role name to the hosts that perform it.
type Roles map[string][]string

// Hosts returns the hosts assigned to role.
func (r Roles) Hosts(role string) ([]string, bool) {
	hosts, ok := r[role]
	return hosts, ok
}

// Names returns the role names, sorted.
func (r Roles) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRoles returns the built-in role definitions.
func DefaultRoles() Roles {
	return Roles{
		"ucc":    {"vm-ubuntu-swat"},
		"server": {"vm-ubuntu-swat"},
	}
}
