package ini

import (
	"fmt"

	goini "gopkg.in/ini.v1"
)

// Document is the section / key / ordered values structure of an ini file.
// Repeated keys keep every value in file order.
type Document map[string]map[string][]string

// Parse reads ini text into a Document.
func Parse(data []byte) (Document, error) {
	f, err := goini.LoadSources(goini.LoadOptions{
		AllowShadows:               true,
		AllowDuplicateShadowValues: true,
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		PreserveSurroundedQuote:    true,
		SkipUnrecognizableLines:    true,
		KeyValueDelimiters:         "=",
	}, data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	doc := make(Document)
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if sec.Name() == goini.DefaultSection && len(keys) == 0 {
			continue
		}
		for _, k := range keys {
			doc.add(sec.Name(), k.Name(), k.ValueWithShadows()...)
		}
		if _, ok := doc[sec.Name()]; !ok {
			doc[sec.Name()] = map[string][]string{}
		}
	}
	return doc, nil
}

// FromSections builds the Document the rendered sections describe.
func FromSections(sections []Section) Document {
	doc := make(Document)
	for _, sec := range sections {
		if _, ok := doc[sec.Name]; !ok {
			doc[sec.Name] = map[string][]string{}
		}
		for _, l := range sec.Lines {
			doc.add(sec.Name, l.Key, l.Value)
		}
	}
	return doc
}

// Values returns every value of key in section, in file order.
func (d Document) Values(section, key string) []string {
	return d[section][key]
}

func (d Document) add(section, key string, values ...string) {
	keys, ok := d[section]
	if !ok {
		keys = map[string][]string{}
		d[section] = keys
	}
	keys[key] = append(keys[key], values...)
}
