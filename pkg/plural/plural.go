package plural

import "strings"

// Rule maps a count to a CLDR plural category.
type Rule func(n int) string

// Plural categories as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// Categories lists every category in CLDR order.
var Categories = []string{Zero, One, Two, Few, Many, Other}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Default is used for languages without a dedicated rule.
// Categories: zero (0), one (1), other.
var Default Rule = func(n int) string {
	switch abs(n) {
	case 0:
		return Zero
	case 1:
		return One
	}
	return Other
}

// English implements the rule shared by English and most Germanic languages.
// Categories: one (1), other (everything else, including 0).
var English Rule = func(n int) string {
	if abs(n) == 1 {
		return One
	}
	return Other
}

// Germanic is an alias of English kept for readability at call sites.
var Germanic = English

// Romance implements the French-family rule where 0 is singular.
// Categories: one (0, 1), many (1,000,000+), other.
var Romance Rule = func(n int) string {
	a := abs(n)
	if a <= 1 {
		return One
	}
	if a >= 1000000 && a%1000000 == 0 {
		return Many
	}
	return Other
}

// Spanish differs from Romance in treating 0 as plural.
// Categories: one (1), many (1,000,000+), other.
var Spanish Rule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return One
	}
	if a >= 1000000 && a%1000000 == 0 {
		return Many
	}
	return Other
}

// Slavic implements the East Slavic rule (Russian, Ukrainian, Belarusian,
// Serbian, Croatian). Categories: one (1, 21, 31...), few (2-4, 22-24...), many.
var Slavic Rule = func(n int) string {
	a := abs(n)
	mod10, mod100 := a%10, a%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return One
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return Few
	}
	return Many
}

// Polish matches Slavic except that only 1 itself is singular.
// Categories: one (1), few (2-4, 22-24...), many.
var Polish Rule = func(n int) string {
	a := abs(n)
	if a == 1 {
		return One
	}
	mod10, mod100 := a%10, a%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return Few
	}
	return Many
}

// Czech covers Czech and Slovak.
// Categories: one (1), few (2-4), other.
var Czech Rule = func(n int) string {
	a := abs(n)
	switch {
	case a == 1:
		return One
	case a >= 2 && a <= 4:
		return Few
	}
	return Other
}

// Asian covers languages without grammatical number
// (Japanese, Chinese, Korean, Thai, Vietnamese).
var Asian Rule = func(_ int) string {
	return Other
}

// Arabic uses all six categories.
var Arabic Rule = func(n int) string {
	a := abs(n)
	switch a {
	case 0:
		return Zero
	case 1:
		return One
	case 2:
		return Two
	}
	mod100 := a % 100
	switch {
	case mod100 >= 3 && mod100 <= 10:
		return Few
	case mod100 >= 11 && mod100 <= 99:
		return Many
	}
	return Other
}

// ForLanguage returns the rule for a language tag such as "pt-BR" or "ru".
// Only the base language is considered. Unknown languages get Default.
func ForLanguage(tag string) Rule {
	base := strings.ToLower(tag)
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}

	switch base {
	case "en", "de", "nl", "sv", "no", "nb", "nn", "da", "is", "it", "fi", "et", "el", "hu", "tr", "bg":
		return English
	case "fr", "pt":
		return Romance
	case "es", "ca":
		return Spanish
	case "ru", "uk", "be", "sr", "hr", "bs":
		return Slavic
	case "pl":
		return Polish
	case "cs", "sk":
		return Czech
	case "ja", "zh", "ko", "th", "vi", "id", "ms", "lo", "my":
		return Asian
	case "ar":
		return Arabic
	default:
		return Default
	}
}

// Keys returns the sub-keys to try, in order, when resolving a plural
// mapping for n. An explicit "zero" entry always wins for a count of 0,
// and "other" is always the last resort.
func Keys(rule Rule, n int) []string {
	if rule == nil {
		rule = Default
	}
	cat := rule(n)

	keys := make([]string, 0, 3)
	if n == 0 {
		keys = append(keys, Zero)
	}
	if cat != Zero {
		keys = append(keys, cat)
	}
	if cat != Other {
		keys = append(keys, Other)
	}
	return keys
}

// Forms reports which categories a rule actually produces.
// Useful for validating that a catalog covers every form a locale needs.
func Forms(rule Rule) []string {
	seen := make(map[string]bool)
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 25, 100, 101, 111, 1000, 1000000} {
		seen[rule(n)] = true
	}

	forms := make([]string, 0, len(seen))
	for _, c := range Categories {
		if seen[c] {
			forms = append(forms, c)
		}
	}
	return forms
}
