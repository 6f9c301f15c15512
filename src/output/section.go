package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	sectionWidth = 61 // inner width between │ and line end
	keyWidth     = 14
)

// Status is the outcome shown next to a row.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusMissing
)

var statusIcons = map[Status]struct{ glyph, color string }{
	StatusOK:      {"✓", colorGreen},
	StatusFailed:  {"✗", colorRed},
	StatusMissing: {"⊘", colorYellow},
}

// Icon returns the status glyph, colored when color is set.
func (st Status) Icon(color bool) string {
	ic, ok := statusIcons[st]
	if !ok {
		ic = statusIcons[StatusMissing]
	}
	if !color {
		return ic.glyph
	}
	return ic.color + ic.glyph + colorReset
}

// Section is a framed block of rows with a titled header.
type Section struct {
	w     io.Writer
	name  string
	color bool
}

// NewSection writes the header for name and returns the section.
// A non-zero elapsed is shown at the right of the header.
func NewSection(w io.Writer, name string, elapsed time.Duration, color bool) *Section {
	s := &Section{w: w, name: name, color: color}
	s.writeHeader(elapsed)
	return s
}

// Row writes one framed line.
func (s *Section) Row(format string, args ...any) {
	fmt.Fprintf(s.w, "    │ %s\n", fmt.Sprintf(format, args...))
}

// KV writes a row with the key padded to a fixed column.
func (s *Section) KV(key, value string) {
	s.Row("%-*s%s", keyWidth, key, value)
}

// Summary writes the closing status row of a section.
func (s *Section) Summary(name string, st Status, detail string) {
	s.Row("%-12s%s  %s", name, st.Icon(s.color), detail)
}

// Separator writes a divider inside the frame.
func (s *Section) Separator() {
	s.rule("├")
}

// Close writes the bottom of the frame.
func (s *Section) Close() {
	s.rule("└")
}

func (s *Section) rule(corner string) {
	fmt.Fprintf(s.w, "    %s%s\n", corner, strings.Repeat("─", sectionWidth))
}

// writeHeader renders "── Name ───── elapsed ──" padded to the frame width.
func (s *Section) writeHeader(elapsed time.Duration) {
	label := "── " + s.name + " "
	suffix := "──"
	if elapsed > 0 {
		suffix = " " + formatElapsed(elapsed) + " ──"
	}

	fill := max(sectionWidth+4-len([]rune(label))-len([]rune(suffix)), 1)
	line := label + strings.Repeat("─", fill) + suffix
	if s.color {
		line = colorHeader + line + colorReset
	}
	fmt.Fprintf(s.w, "\n    %s\n", line)
}

// Dimmed greys out text when color is set.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return colorDim + text + colorReset
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dm%.1fs", mins, d.Seconds()-float64(mins*60))
}
