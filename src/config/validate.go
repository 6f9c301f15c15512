package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/swat4julia/swatfreight/src/gitref"
	"github.com/swat4julia/swatfreight/src/ini"
)

// requiredRoles are the roles the deployment tasks run against.
var requiredRoles = []string{"ucc", "server"}

// ValidationError lists every violation found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Paths ─────────────────────────────────────────────────────────────

	if cfg.Paths.Here == "" {
		errs = append(errs, "paths.here: is required")
	} else {
		for _, e := range cfg.Paths.Table()[1:] {
			if !isChild(cfg.Paths.Here, e.Path) {
				errs = append(errs, fmt.Sprintf("paths.%s: %q is not below paths.here %q", e.Name, e.Path, cfg.Paths.Here))
			}
		}
	}

	// ── Kits ──────────────────────────────────────────────────────────────

	if len(cfg.Kits) == 0 {
		errs = append(errs, "kits: at least one kit is required")
	}
	for _, name := range sortedKeys(cfg.Kits) {
		k := cfg.Kits[name]
		kpath := fmt.Sprintf("kits.%s", name)

		for _, f := range []struct{ field, value string }{
			{"mod", k.Mod},
			{"content", k.Content},
			{"server", k.Server},
			{"ini", k.INI},
		} {
			if strings.TrimSpace(f.value) == "" {
				errs = append(errs, fmt.Sprintf("%s: %s is required", kpath, f.field))
			}
		}
		if k.Server != "" && !strings.EqualFold(filepath.Ext(k.Server), ".exe") {
			warnings = append(warnings, fmt.Sprintf("%s: server %q does not look like an executable", kpath, k.Server))
		}
		if k.INI != "" && !strings.EqualFold(filepath.Ext(k.INI), ".ini") {
			warnings = append(warnings, fmt.Sprintf("%s: ini %q does not end in .ini", kpath, k.INI))
		}
	}

	// ── Roles ─────────────────────────────────────────────────────────────

	for _, role := range requiredRoles {
		if _, ok := cfg.Roles[role]; !ok {
			warnings = append(warnings, fmt.Sprintf("roledefs: no %q role defined", role))
		}
	}
	for _, role := range cfg.Roles.Names() {
		hosts := cfg.Roles[role]
		if len(hosts) == 0 {
			errs = append(errs, fmt.Sprintf("roledefs.%s: at least one host is required", role))
		}
		for i, h := range hosts {
			if strings.TrimSpace(h) == "" {
				errs = append(errs, fmt.Sprintf("roledefs.%s[%d]: host is empty", role, i))
			}
		}
	}

	// ── Ucc ───────────────────────────────────────────────────────────────

	if cfg.Ucc.Path == "" {
		errs = append(errs, "ucc.path: is required")
	}
	if _, perr := gitref.Parse(cfg.Ucc.Git); perr != nil {
		errs = append(errs, fmt.Sprintf("ucc.git: %v", perr))
	}
	names := make(map[string]bool)
	for i, p := range cfg.Ucc.Packages {
		ppath := fmt.Sprintf("ucc.packages[%d]", i)

		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("%s: name is required", ppath))
		} else if names[p.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate package %q", ppath, p.Name))
		} else {
			names[p.Name] = true
		}

		if _, perr := gitref.Parse(p.Git); perr != nil {
			errs = append(errs, fmt.Sprintf("%s.git: %v", ppath, perr))
		}
	}

	// ── Server ────────────────────────────────────────────────────────────

	if cfg.Server.Path == "" {
		errs = append(errs, "server.path: is required")
	}
	if _, perr := gitref.Parse(cfg.Server.Git); perr != nil {
		errs = append(errs, fmt.Sprintf("server.git: %v", perr))
	}
	headers := make(map[string]bool)
	for i, s := range cfg.Server.Settings {
		spath := fmt.Sprintf("server.settings[%d]", i)

		if headers[s.Header] {
			errs = append(errs, fmt.Sprintf("%s: duplicate section %q", spath, s.Header))
		}
		headers[s.Header] = true

		if _, serr := ini.Compile(s.Header, s.Lines); serr != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", spath, serr))
		}
	}

	// ── Dist ──────────────────────────────────────────────────────────────

	if _, verr := semver.StrictNewVersion(cfg.Dist.Version); verr != nil {
		errs = append(errs, fmt.Sprintf("dist.version: %q is not a semantic version: %v", cfg.Dist.Version, verr))
	}
	for i, extra := range cfg.Dist.Extra {
		if strings.TrimSpace(extra) == "" {
			errs = append(errs, fmt.Sprintf("dist.extra[%d]: path is empty", i))
			continue
		}
		if cfg.Paths.Here != "" && !isChild(cfg.Paths.Here, extra) {
			warnings = append(warnings, fmt.Sprintf("dist.extra[%d]: %q is outside paths.here", i, extra))
		}
	}

	if len(errs) > 0 {
		return warnings, &ValidationError{Problems: errs}
	}
	return warnings, nil
}
