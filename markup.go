package stencil

import "strings"

// Replacement tables for the two escaping modes. Content escaping covers
// the characters that break element text; attribute escaping additionally
// covers the double quote. Single quotes are deliberately left alone, so
// attribute values must be double-quoted.
var (
	contentEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// Markup is a string that is already escaped and safe to emit into HTML
// output as-is. Rendering code can use the type to tell trusted fragments
// apart from raw user input.
type Markup string

// String returns the markup unchanged.
func (m Markup) String() string { return string(m) }

// Escape replaces &, < and > with their entity references and marks the
// result as safe. Quote characters pass through untouched; use EscapeAttr
// for text placed inside an attribute value.
func Escape(s string) Markup {
	return Markup(contentEscaper.Replace(s))
}

// EscapeAttr escapes like Escape and additionally replaces double quotes
// with &quot;, making the result safe inside a double-quoted HTML
// attribute.
func EscapeAttr(s string) Markup {
	return Markup(attrEscaper.Replace(s))
}
