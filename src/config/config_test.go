package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/swat4julia/swatfreight/src/ini"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestDefaultPaths(t *testing.T) {
	cfg := Default("/srv/swat-julia")

	want := []PathEntry{
		{Name: "here", Path: "/srv/swat-julia"},
		{Name: "dist", Path: "/srv/swat-julia/dist"},
		{Name: "compiled", Path: "/srv/swat-julia/compiled"},
	}
	if diff := cmp.Diff(want, cfg.Paths.Table()); diff != "" {
		t.Errorf("path table (-want +got):\n%s", diff)
	}
	for _, e := range cfg.Paths.Table()[1:] {
		if !isChild(cfg.Paths.Here, e.Path) {
			t.Errorf("%s = %q is not a child of %q", e.Name, e.Path, cfg.Paths.Here)
		}
	}

	wantExtra := []string{
		"/srv/swat-julia/LICENSE",
		"/srv/swat-julia/README.html",
		"/srv/swat-julia/CHANGES.html",
	}
	if diff := cmp.Diff(wantExtra, cfg.Dist.Extra); diff != "" {
		t.Errorf("dist.extra (-want +got):\n%s", diff)
	}
}

func TestDefaultRelativeRoot(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := Default(".")
	if cfg.Paths.Here != dir {
		t.Errorf("here = %q, want %q", cfg.Paths.Here, dir)
	}
	if want := filepath.Join(dir, "dist"); cfg.Paths.Dist != want {
		t.Errorf("dist = %q, want %q", cfg.Paths.Dist, want)
	}
	if want := filepath.Join(dir, "LICENSE"); cfg.Dist.Extra[0] != want {
		t.Errorf("dist.extra[0] = %q, want %q", cfg.Dist.Extra[0], want)
	}
}

func TestLoadRelativeOverlayPaths(t *testing.T) {
	path := writeTempFile(t, "deploy.yml", "paths:\n  dist: out\n")

	cfg, err := Load(path, "/srv/swat-julia")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Dist != "/srv/swat-julia/out" {
		t.Errorf("dist = %q", cfg.Paths.Dist)
	}
	if cfg.Paths.Compiled != "/srv/swat-julia/compiled" {
		t.Errorf("compiled = %q", cfg.Paths.Compiled)
	}
}

func TestDefaultKits(t *testing.T) {
	cfg := Default("/srv/swat-julia")

	if diff := cmp.Diff([]string{"swat4", "swat4exp"}, cfg.KitNames()); diff != "" {
		t.Fatalf("kit names (-want +got):\n%s", diff)
	}
	for name, k := range cfg.Kits {
		if k.Mod == "" || k.Content == "" || k.Server == "" || k.INI == "" {
			t.Errorf("kit %s has an empty field: %+v", name, k)
		}
	}

	exp := cfg.Kits["swat4exp"]
	root := cfg.Server.KitRoot()
	if got := exp.INIPath(root); got != "/home/sergei/swat4server/ContentExpansion/System/Swat4XDedicatedServer.ini" {
		t.Errorf("INIPath = %q", got)
	}
	if got := exp.ModSystemDir(root); got != "/home/sergei/swat4server/ModX/System" {
		t.Errorf("ModSystemDir = %q", got)
	}
	if got := cfg.Kits["swat4"].ExecutablePath(root); got != "/home/sergei/swat4server/Content/System/Swat4DedicatedServer.exe" {
		t.Errorf("ExecutablePath = %q", got)
	}
}

func TestDefaultSettingsShape(t *testing.T) {
	s := DefaultServerConfig()

	wantHeaders := []string{
		"+[Engine.GameEngine]",
		"[Julia.Core]",
		"[JuliaChat.Locale]",
		"[JuliaChat.Extension]",
	}
	var headers []string
	for _, sec := range s.Settings {
		headers = append(headers, sec.Header)
		if len(sec.Lines) == 0 {
			t.Errorf("%s has no lines", sec.Header)
		}
		for _, l := range sec.Lines {
			if _, err := ini.ParseLine(l); err != nil {
				t.Errorf("%s: %v", sec.Header, err)
			}
		}
	}
	if diff := cmp.Diff(wantHeaders, headers); diff != "" {
		t.Errorf("headers (-want +got):\n%s", diff)
	}

	ext, ok := s.Lookup("[JuliaChat.Extension]")
	if !ok {
		t.Fatal("no [JuliaChat.Extension] section")
	}
	var templates, replies int
	for _, l := range ext.Lines {
		switch {
		case strings.HasPrefix(l, "Templates="):
			templates++
		case strings.HasPrefix(l, "Replies="):
			replies++
		}
	}
	if templates != 3 || replies != 3 {
		t.Errorf("got %d Templates and %d Replies, want 3 pairs", templates, replies)
	}

	locale, _ := s.Lookup("[JuliaChat.Locale]")
	if locale.Lines[0] != `ReplyMessage=[b]Jess (AdminBot)[\b]: %1` {
		t.Errorf("ReplyMessage = %q", locale.Lines[0])
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	sections, err := DefaultServerConfig().Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	doc, err := ini.Parse(ini.RenderBytes(sections))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(ini.FromSections(sections), doc); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}

	actors := doc.Values("Engine.GameEngine", "ServerActors")
	if diff := cmp.Diff([]string{"Utils.Package", "Julia.Core", "JuliaChat.Extension"}, actors); diff != "" {
		t.Errorf("ServerActors (-want +got):\n%s", diff)
	}
}

func TestCustomSettingsRoundTrip(t *testing.T) {
	cfg := Default(t.TempDir())
	cfg.Server.Settings = []Section{
		{Header: "[Julia.Core]", Lines: []string{"Enabled=True", "Motd=\"quoted\""}},
		{Header: "[JuliaChat.Extension]", Lines: []string{
			"ReplyDelay=0.5",
			"Templates=#not a comment;still value",
			"Replies=a=b=c",
			"Templates=second",
		}},
		{Header: "+[Engine.GameEngine]", Lines: []string{"ServerActors=Custom.Actor"}},
	}
	if _, err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	sections, err := cfg.Server.Sections()
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	doc, err := ini.Parse(ini.RenderBytes(sections))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(ini.FromSections(sections), doc); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "/srv/swat-julia")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default("/srv/swat-julia"), cfg); diff != "" {
		t.Errorf("Load without file differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "/srv"); err == nil {
		t.Fatal("Load accepted a missing explicit config file")
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := writeTempFile(t, "deploy.yml", `
paths:
  here: /opt/julia
roledefs:
  server: [game-1, game-2]
dist:
  version: 1.1.0
ucc:
  packages:
    - name: Utils
      git: git@home:swat/swat-utils#origin/master
`)

	cfg, err := Load(path, "/ignored")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// overriding here moves the derived paths
	if cfg.Paths.Dist != "/opt/julia/dist" || cfg.Paths.Compiled != "/opt/julia/compiled" {
		t.Errorf("derived paths = %q, %q", cfg.Paths.Dist, cfg.Paths.Compiled)
	}
	if cfg.Dist.Extra[0] != "/opt/julia/LICENSE" {
		t.Errorf("dist.extra[0] = %q", cfg.Dist.Extra[0])
	}
	// maps merge
	if diff := cmp.Diff([]string{"vm-ubuntu-swat"}, cfg.Roles["ucc"]); diff != "" {
		t.Errorf("roledefs.ucc (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"game-1", "game-2"}, cfg.Roles["server"]); diff != "" {
		t.Errorf("roledefs.server (-want +got):\n%s", diff)
	}
	// lists replace
	if len(cfg.Ucc.Packages) != 1 || cfg.Ucc.Packages[0].Git != "git@home:swat/swat-utils#origin/master" {
		t.Errorf("ucc.packages = %+v", cfg.Ucc.Packages)
	}
	if cfg.Dist.Version != "1.1.0" {
		t.Errorf("dist.version = %q", cfg.Dist.Version)
	}
	if len(cfg.Server.Settings) != 4 {
		t.Errorf("server.settings replaced without being set: %d sections", len(cfg.Server.Settings))
	}
}

func TestLoadTOMLOverlay(t *testing.T) {
	path := writeTempFile(t, "deploy.toml", `
[dist]
version = "2.0.0-rc.1"

[kits.swat4]
mod = "Mod"
content = "Content"
server = "Swat4DedicatedServer.exe"
ini = "Server.ini"

[[server.settings]]
section = "[Julia.Core]"
lines = ["Enabled=False"]
`)

	cfg, err := Load(path, "/srv/swat-julia")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.Here != "/srv/swat-julia" {
		t.Errorf("paths.here = %q", cfg.Paths.Here)
	}
	if cfg.Dist.Version != "2.0.0-rc.1" {
		t.Errorf("dist.version = %q", cfg.Dist.Version)
	}
	if cfg.Kits["swat4"].INI != "Server.ini" {
		t.Errorf("kits.swat4.ini = %q", cfg.Kits["swat4"].INI)
	}
	if _, ok := cfg.Kits["swat4exp"]; !ok {
		t.Error("kits.swat4exp dropped by overlay")
	}
	want := []Section{{Header: "[Julia.Core]", Lines: []string{"Enabled=False"}}}
	if diff := cmp.Diff(want, cfg.Server.Settings); diff != "" {
		t.Errorf("server.settings (-want +got):\n%s", diff)
	}
}

func TestLoadStrict(t *testing.T) {
	tests := map[string]string{
		"unknown.yml":  "dist:\n  versoin: 1.0.0\n",
		"unknown.toml": "[dist]\nversoin = \"1.0.0\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTempFile(t, name, content), "/srv")
			if !errors.Is(err, ErrUnknownConfigField) {
				t.Fatalf("Load error = %v, want ErrUnknownConfigField", err)
			}
		})
	}
}

func TestLoadMultipleDocuments(t *testing.T) {
	path := writeTempFile(t, "multi.yml", "dist:\n  version: 1.0.0\n---\ndist:\n  version: 2.0.0\n")
	if _, err := Load(path, "/srv"); err == nil {
		t.Fatal("Load accepted multiple YAML documents")
	}
}

func TestMarshalTOMLRoundTrip(t *testing.T) {
	cfg := Default("/srv/swat-julia")

	data, err := Marshal(cfg, "toml")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	loaded, err := Load(writeTempFile(t, "effective.toml", string(data)), "/elsewhere")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("toml round trip (-want +got):\n%s", diff)
	}

	if _, err := Marshal(cfg, "json"); err == nil {
		t.Error("Marshal accepted an unknown format")
	}
}
