package ini

import (
	"bytes"
	"strings"
)

// block is one section of an existing file: its header line and body lines
// exactly as read. The preamble before the first header has no header.
type block struct {
	name    string
	header  string
	lines   []string
	created bool
}

// Apply merges sections into an existing ini file and returns the new text.
//
// Append sections add each line unless the same line is already present.
// Other sections replace: every existing line whose key appears in the
// section is removed and the section's lines are written where the first
// removed line was. Sections missing from base are added at the end.
// Unrelated lines and comments are kept. Apply is idempotent.
func Apply(base []byte, sections []Section) []byte {
	eol := "\n"
	if bytes.Contains(base, []byte("\r\n")) {
		eol = "\r\n"
	}
	blocks := splitBlocks(string(base))

	for _, sec := range sections {
		idx := findBlocks(blocks, sec.Name)
		if len(idx) == 0 {
			blocks = append(blocks, &block{name: sec.Name, header: "[" + sec.Name + "]", created: true})
			idx = []int{len(blocks) - 1}
		}
		if sec.Append {
			appendLines(blocks, idx, sec.Lines)
			continue
		}
		replaceLines(blocks, idx, sec.Lines)
	}

	return joinBlocks(blocks, eol)
}

func splitBlocks(text string) []*block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	cur := &block{}
	blocks := []*block{cur}
	if text == "" {
		return blocks
	}
	for _, line := range strings.Split(text, "\n") {
		if name, ok := headerName(line); ok {
			cur = &block{name: name, header: line}
			blocks = append(blocks, cur)
			continue
		}
		cur.lines = append(cur.lines, line)
	}
	return blocks
}

func headerName(line string) (string, bool) {
	t := strings.TrimSpace(line)
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(t[1 : len(t)-1]), true
}

// findBlocks returns the indexes of blocks named name. Section names
// compare case-insensitively, like the engine does.
func findBlocks(blocks []*block, name string) []int {
	var idx []int
	for i, b := range blocks {
		if b.header != "" && strings.EqualFold(b.name, name) {
			idx = append(idx, i)
		}
	}
	return idx
}

// appendLines adds lines not present in any block of the section to its
// first block.
func appendLines(blocks []*block, idx []int, lines []Line) {
	have := make(map[string]bool)
	for _, i := range idx {
		for _, l := range blocks[i].lines {
			have[strings.TrimSpace(l)] = true
		}
	}
	var add []string
	for _, l := range lines {
		s := l.String()
		if have[s] {
			continue
		}
		have[s] = true
		add = append(add, s)
	}
	first := blocks[idx[0]]
	first.insert(first.contentEnd(), add)
}

func replaceLines(blocks []*block, idx []int, lines []Line) {
	keys := make(map[string]bool, len(lines))
	for _, l := range lines {
		keys[strings.ToLower(l.Key)] = true
	}

	at := -1
	for n, i := range idx {
		b := blocks[i]
		kept := b.lines[:0:0]
		for _, l := range b.lines {
			if keys[lineKey(l)] {
				if n == 0 && at < 0 {
					at = len(kept)
				}
				continue
			}
			kept = append(kept, l)
		}
		b.lines = kept
	}

	first := blocks[idx[0]]
	if at < 0 {
		at = first.contentEnd()
	}
	add := make([]string, len(lines))
	for i, l := range lines {
		add[i] = l.String()
	}
	first.insert(at, add)
}

// lineKey returns the lowercased key of a setting line, or "" for comments
// and lines without '='.
func lineKey(line string) string {
	t := strings.TrimSpace(line)
	if t == "" || t[0] == ';' || t[0] == '#' {
		return ""
	}
	key, _, ok := strings.Cut(t, "=")
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(key))
}

// contentEnd is the index after the last non-blank line.
func (b *block) contentEnd() int {
	end := len(b.lines)
	for end > 0 && strings.TrimSpace(b.lines[end-1]) == "" {
		end--
	}
	return end
}

func (b *block) insert(at int, lines []string) {
	if len(lines) == 0 {
		return
	}
	out := make([]string, 0, len(b.lines)+len(lines))
	out = append(out, b.lines[:at]...)
	out = append(out, lines...)
	out = append(out, b.lines[at:]...)
	b.lines = out
}

func joinBlocks(blocks []*block, eol string) []byte {
	var buf bytes.Buffer
	for i, b := range blocks {
		if b.header != "" {
			if b.created && buf.Len() > 0 && !endsBlank(blocks[i-1]) {
				buf.WriteString(eol)
			}
			buf.WriteString(b.header)
			buf.WriteString(eol)
		}
		for _, l := range b.lines {
			buf.WriteString(l)
			buf.WriteString(eol)
		}
	}
	return buf.Bytes()
}

func endsBlank(b *block) bool {
	if len(b.lines) == 0 {
		return b.header == ""
	}
	return strings.TrimSpace(b.lines[len(b.lines)-1]) == ""
}
