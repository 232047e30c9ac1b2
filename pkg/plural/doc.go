// Package plural selects CLDR plural categories for counts.
//
// A [Rule] maps an integer to one of "zero", "one", "two", "few", "many"
// or "other". Catalog entries that vary by count are stored as mappings
// keyed by those categories:
//
//	{
//	  "apples": {
//	    "zero":  "no apples",
//	    "one":   "{{count}} apple",
//	    "other": "{{count}} apples"
//	  }
//	}
//
// [Keys] returns the lookup order for such a mapping, so callers resolve
// the first present sub-key:
//
//	plural.Keys(plural.English, 0) // ["zero", "other"]
//	plural.Keys(plural.Slavic, 3)  // ["few", "other"]
//
// Use [ForLanguage] to pick a rule from a language tag.
package plural
