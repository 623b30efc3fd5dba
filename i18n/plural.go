package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// isOne reports whether the cardinal plural rules of tag classify n in
// the "one" category. The rules operate on the absolute value.
func isOne(tag language.Tag, n int) bool {
	if n < 0 {
		n = -n
	}
	return plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) == plural.One
}

// Select chooses between the two forms of an extracted translation for
// a count of n items: singular when the language's cardinal plural rules
// classify n as "one", plural otherwise.
//
// The classification follows CLDR, not n == 1. French, for example,
// treats 0 as singular, and languages without a "one" category always
// select the plural form.
func Select(tag language.Tag, n int, singular, plural string) string {
	if isOne(tag, n) {
		return singular
	}
	return plural
}
