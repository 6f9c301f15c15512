package output

import (
	"fmt"
	"os"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[90m"
	colorHeader = "\033[2;36m"
)

// Problems writes warnings and errors as tagged rows inside sec.
func Problems(sec *Section, warnings, errs []string, color bool) {
	for _, e := range errs {
		sec.Row("%s %s", tag("ERR ", colorRed, color), e)
	}
	for _, w := range warnings {
		sec.Row("%s %s", tag("WARN", colorYellow, color), w)
	}
}

// SummaryLine returns "N errors, M warnings" or "no problems".
func SummaryLine(errs, warnings int) string {
	if errs == 0 && warnings == 0 {
		return "no problems"
	}
	return fmt.Sprintf("%d errors, %d warnings", errs, warnings)
}

func tag(text, color string, enabled bool) string {
	if !enabled {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we run inside a CI job.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
