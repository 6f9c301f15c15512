package ini

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies the byte encoding of an ini file on disk.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
	Windows1252
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case Windows1252:
		return "windows-1252"
	default:
		return "utf-8"
	}
}

// DetectEncoding inspects the byte order mark. Files without one that are
// not valid UTF-8 are taken to be Windows-1252.
func DetectEncoding(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return UTF16LE
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return UTF16BE
	case bytes.HasPrefix(raw, utf8BOM):
		return UTF8BOM
	case !utf8.Valid(raw):
		return Windows1252
	default:
		return UTF8
	}
}

// Decode converts raw file bytes to UTF-8 text without a byte order mark.
func Decode(raw []byte) ([]byte, Encoding, error) {
	enc := DetectEncoding(raw)

	var t transform.Transformer
	switch enc {
	case UTF8:
		return raw, enc, nil
	case UTF8BOM:
		return raw[len(utf8BOM):], enc, nil
	case Windows1252:
		t = charmap.Windows1252.NewDecoder()
	default:
		t = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return nil, enc, fmt.Errorf("decode %s: %w", enc, err)
	}
	return out, enc, nil
}

// Encode converts UTF-8 text back to enc. UTF-16 output carries a byte order mark.
func Encode(text []byte, enc Encoding) ([]byte, error) {
	var e encoding.Encoding
	switch enc {
	case UTF8BOM:
		return append(append([]byte{}, utf8BOM...), text...), nil
	case UTF16LE:
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case Windows1252:
		e = charmap.Windows1252
	default:
		return text, nil
	}
	out, _, err := transform.Bytes(e.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc, err)
	}
	return out, nil
}
