package ini

import (
	"bytes"
	"fmt"
	"io"
)

// Render writes sections as ini text, a blank line between sections.
// The append marker is not part of ini syntax and is dropped.
func Render(w io.Writer, sections []Section) error {
	for i, sec := range sections {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%s]\n", sec.Name); err != nil {
			return err
		}
		for _, l := range sec.Lines {
			if _, err := fmt.Fprintf(w, "%s\n", l); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderBytes is Render into a byte slice.
func RenderBytes(sections []Section) []byte {
	var buf bytes.Buffer
	_ = Render(&buf, sections) // bytes.Buffer writes don't fail
	return buf.Bytes()
}
