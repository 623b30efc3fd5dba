// Package i18n extracts translatable strings from parsed template
// documents and selects plural forms for them.
//
// # Extraction
//
// A front end exposes its syntax tree through the Node interface and
// marks translatable spans with Marker nodes. Extract walks the tree and
// yields every marker as a Translation:
//
//	for tr := range i18n.Extract(doc) {
//	    fmt.Printf("#: template:%d\nmsgid %q\n", tr.Line, tr.Singular)
//	    if tr.Plural != "" {
//	        fmt.Printf("msgid_plural %q\n", tr.Plural)
//	    }
//	}
//
// The walk is lazy, so a consumer that only needs the first few entries
// can break out early. Collect gathers everything into a slice.
//
// # Plural Selection
//
// Select picks the singular or plural form of a translation for a given
// count using the CLDR cardinal rules of a language:
//
//	i18n.Select(language.English, 1, "apple", "apples") // "apple"
//	i18n.Select(language.French, 0, "pomme", "pommes")  // "pomme"
//
// # Thread Safety
//
// Extraction holds no state outside the iteration, and Select is pure.
// Both are safe for concurrent use as long as the document itself is not
// mutated during a walk.
package i18n
