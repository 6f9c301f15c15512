package config

import (
	"fmt"
	"path/filepath"

	"github.com/swat4julia/swatfreight/src/ini"
)

// ServerConfig describes the dedicated server environment.
type ServerConfig struct {
	Path     string    `yaml:"path" toml:"path"`
	Git      string    `yaml:"git" toml:"git"`
	Settings []Section `yaml:"settings" toml:"settings"`
}

// Section is one ini section of server settings.
// Header is "[Name]" to set keys or "+[Name]" to append lines.
// Lines are literal Key=Value strings, written in order.
type Section struct {
	Header string   `yaml:"section" toml:"section"`
	Lines  []string `yaml:"lines" toml:"lines"`
}

// Lookup returns the section with the given header.
func (s ServerConfig) Lookup(header string) (Section, bool) {
	for _, sec := range s.Settings {
		if sec.Header == header {
			return sec, true
		}
	}
	return Section{}, false
}

// Sections compiles the settings into ini sections, in declaration order.
func (s ServerConfig) Sections() ([]ini.Section, error) {
	out := make([]ini.Section, 0, len(s.Settings))
	for i, sec := range s.Settings {
		compiled, err := ini.Compile(sec.Header, sec.Lines)
		if err != nil {
			return nil, fmt.Errorf("server.settings[%d]: %w", i, err)
		}
		out = append(out, compiled)
	}
	return out, nil
}

// KitRoot is the server checkout directory. Kits resolve their paths below it.
func (s ServerConfig) KitRoot() string {
	return filepath.Clean(s.Path)
}

// DefaultServerConfig returns the built-in server environment and settings.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Path: "/home/sergei/swat4server/",
		Git:  "git@home:public/swat4#origin/server",
		Settings: []Section{
			{
				Header: "+[Engine.GameEngine]",
				Lines: []string{
					"ServerActors=Utils.Package",
					"ServerActors=Julia.Core",
					"ServerActors=JuliaChat.Extension",
				},
			},
			{
				Header: "[Julia.Core]",
				Lines: []string{
					"Enabled=True",
				},
			},
			{
				Header: "[JuliaChat.Locale]",
				Lines: []string{
					`ReplyMessage=[b]Jess (AdminBot)[\b]: %1`,
				},
			},
			{
				Header: "[JuliaChat.Extension]",
				Lines:  chatExtensionLines(),
			},
		},
	}
}

// chatExtensionLines holds the chatbot switches and its Templates/Replies pairs.
// Each Templates line is matched by the Replies line that follows it.
func chatExtensionLines() []string {
	return []string{
		"Enabled=True",
		"ReplyDelay=0.5",
		"ReplyThreshold=0.0",

		// greeting on return
		`Templates=*(hi|ello|hey|yo) *again*#*i*m back*`,
		`Replies=Welcome back!#Hi, where have you been?#Hi. I missed you.. NOT!#Hi, again...#Hey [b]%name%[\b].#Welcome back, [b]%name%[\b].#Hi [b]%name[\b]! It's nice to see you again.`,

		// greeting
		`Templates=*(hi|ello|hey|yo|morning|evening|noon|hiya) *(all|guys|every)*`,
		`Replies=Hello, fellow gamer. Enjoy your stay.#Hello [b]%name%[\b].#Hey [b]%name%[\b].#Hi!#Hello there, [b]%name%[\b].#Hey, what's up?#Greetings, [b]%name%[\b].#Welcome to the server, [b]%name%[\b].#Hi [b]%name%[\b]!#Hey [b]%name%[\b]. Have fun!#Hi [b]%name%[\b]. Follow the rules and have fun!#Hiya [b]%name%[\b].`,

		// farewell
		`Templates=*(bb|bye|goodbye|cya|see y*|night|nite|gn) *(all|guys)*#*(have*go|gtg|g2g|got*go)( *|)`,
		`Replies=Goodbye [b]%name%[\b]. Take care.#See you later, [b]%name%[\b].#Bye.#See you later.#See you, [b]%name%[\b]. Be good.#Bye.#See ya, [b]%name%[\b]. Keep your nose clean.#Goodbye [b]%name%[\b], come back soon!#So long, [b]%name%[\b]. See you later.`,
	}
}
