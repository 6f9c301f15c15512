package output

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSectionPlain(t *testing.T) {
	var buf bytes.Buffer
	sec := NewSection(&buf, "Paths", 0, false)
	sec.KV("here", "/srv/swat-julia")
	sec.Close()

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "    ── Paths ─") || !strings.HasSuffix(lines[0], "──") {
		t.Errorf("header = %q", lines[0])
	}
	if got := len([]rune(lines[0])); got != sectionWidth+8 {
		t.Errorf("header width = %d, want %d", got, sectionWidth+8)
	}
	if lines[1] != "    │ here          /srv/swat-julia" {
		t.Errorf("row = %q", lines[1])
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Error("escape codes written with color disabled")
	}
}

func TestProblems(t *testing.T) {
	var buf bytes.Buffer
	sec := NewSection(&buf, "Validate", 0, false)
	Problems(sec, []string{"roledefs: no \"ucc\" role defined"}, []string{"dist.version: bad"}, false)

	out := buf.String()
	errAt := strings.Index(out, "ERR  dist.version: bad")
	warnAt := strings.Index(out, "WARN roledefs")
	if errAt < 0 || warnAt < 0 || errAt > warnAt {
		t.Errorf("unexpected problems output:\n%s", out)
	}
}

func TestSummaryLine(t *testing.T) {
	if got := SummaryLine(0, 0); got != "no problems" {
		t.Errorf("SummaryLine(0, 0) = %q", got)
	}
	if got := SummaryLine(2, 1); got != "2 errors, 1 warnings" {
		t.Errorf("SummaryLine(2, 1) = %q", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := map[time.Duration]string{
		500 * time.Microsecond:  "<1ms",
		250 * time.Millisecond:  "250ms",
		1500 * time.Millisecond: "1.5s",
		90 * time.Second:        "1m30.0s",
	}
	for d, want := range tests {
		if got := formatElapsed(d); got != want {
			t.Errorf("formatElapsed(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		st    Status
		plain string
	}{
		{StatusOK, "✓"},
		{StatusFailed, "✗"},
		{StatusMissing, "⊘"},
	}
	for _, tt := range tests {
		if got := tt.st.Icon(false); got != tt.plain {
			t.Errorf("Icon(false) = %q, want %q", got, tt.plain)
		}
		if got := tt.st.Icon(true); !strings.HasPrefix(got, "\033[") || !strings.Contains(got, tt.plain) {
			t.Errorf("Icon(true) = %q", got)
		}
	}
}

func TestSectionSummary(t *testing.T) {
	var buf bytes.Buffer
	sec := NewSection(&buf, "Dist 1.0.0", 1500*time.Millisecond, false)
	sec.Separator()
	sec.Summary("total", StatusFailed, "5 files, 120 bytes")
	sec.Close()

	lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
	if !strings.HasSuffix(lines[0], " 1.5s ──") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "    │ total       ✗  5 files, 120 bytes" {
		t.Errorf("summary = %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "    └─") {
		t.Errorf("footer = %q", lines[3])
	}
}
