// Package ini reads, renders and edits Unreal Engine 2 style ini files as
// used by the SWAT 4 dedicated server. Keys may repeat within a section and
// values are taken verbatim: '#' and ';' are ordinary characters there.
package ini

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned for headers and lines that are not valid ini.
var ErrMalformed = errors.New("malformed ini")

// Section is a named group of setting lines.
// Append marks a "+[Name]" section whose lines are added to the target
// instead of replacing keys.
type Section struct {
	Name   string
	Append bool
	Lines  []Line
}

// Line is a single Key=Value setting.
type Line struct {
	Key   string
	Value string
}

// String renders the line as written in an ini file.
func (l Line) String() string {
	return l.Key + "=" + l.Value
}

// Header renders the section header in settings form.
func (s Section) Header() string {
	if s.Append {
		return "+[" + s.Name + "]"
	}
	return "[" + s.Name + "]"
}

// ParseHeader parses "[Name]" or "+[Name]".
func ParseHeader(h string) (name string, appendMode bool, err error) {
	raw := strings.TrimSpace(h)
	if strings.HasPrefix(raw, "+") {
		appendMode = true
		raw = raw[1:]
	}
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return "", false, fmt.Errorf("%w: section header %q must be [Section] or +[Section]", ErrMalformed, h)
	}
	name = strings.TrimSpace(raw[1 : len(raw)-1])
	if name == "" {
		return "", false, fmt.Errorf("%w: section header %q has no name", ErrMalformed, h)
	}
	if strings.ContainsAny(name, "[]") {
		return "", false, fmt.Errorf("%w: section name %q contains brackets", ErrMalformed, name)
	}
	return name, appendMode, nil
}

// ParseLine parses a Key=Value line. The value is kept verbatim, so lines
// whose value a reader would trim or unquote are rejected.
func ParseLine(s string) (Line, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Line{}, fmt.Errorf("%w: line %q is not Key=Value", ErrMalformed, s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Line{}, fmt.Errorf("%w: line %q has an empty key", ErrMalformed, s)
	}
	if strings.ContainsAny(key, "[]\r\n") {
		return Line{}, fmt.Errorf("%w: key %q contains invalid characters", ErrMalformed, key)
	}
	if strings.ContainsAny(key[:1], ";#`\"") {
		return Line{}, fmt.Errorf("%w: key %q starts with a comment or quote character", ErrMalformed, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return Line{}, fmt.Errorf("%w: value of %q spans lines", ErrMalformed, key)
	}
	if value != strings.TrimSpace(value) {
		return Line{}, fmt.Errorf("%w: value of %q has surrounding whitespace", ErrMalformed, key)
	}
	// Readers unquote these forms, so the value would not read back as written.
	if strings.HasPrefix(value, "`") || strings.HasPrefix(value, `"""`) {
		return Line{}, fmt.Errorf("%w: value of %q starts with a quote sequence", ErrMalformed, key)
	}
	return Line{Key: key, Value: value}, nil
}

// Compile builds a Section from a settings header and its literal lines.
// A section must carry at least one line.
func Compile(header string, lines []string) (Section, error) {
	name, appendMode, err := ParseHeader(header)
	if err != nil {
		return Section{}, err
	}
	if len(lines) == 0 {
		return Section{}, fmt.Errorf("%w: section %q has no lines", ErrMalformed, header)
	}

	sec := Section{Name: name, Append: appendMode, Lines: make([]Line, 0, len(lines))}
	for i, raw := range lines {
		l, err := ParseLine(raw)
		if err != nil {
			return Section{}, fmt.Errorf("%s line %d: %w", header, i+1, err)
		}
		sec.Lines = append(sec.Lines, l)
	}
	return sec, nil
}
