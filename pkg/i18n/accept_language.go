package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the work done on oversized headers.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag     language.Tag
	quality float64
}

// ParseAcceptLanguage returns the locales of an Accept-Language header,
// normalized and ordered by quality. Invalid tags, "*" and q=0 entries are
// skipped; duplicates keep their first (highest quality) position.
//
// Example:
//
//	ParseAcceptLanguage("de-CH, en;q=0.8, de;q=0.9") // ["de-CH", "de", "en"]
func ParseAcceptLanguage(header string) []string {
	tags := parseWeightedTags(header)

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		s := t.tag.String()
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// MatchLocale picks the best of the available locales for an
// Accept-Language header using the CLDR matcher, so "de-AT" selects "de"
// and "zh-TW" prefers "zh-Hant" over "zh-Hans". The first available locale
// is returned when nothing matches.
func MatchLocale(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}

	weighted := parseWeightedTags(header)
	if len(weighted) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		index = append(index, i)
	}
	if len(supported) == 0 {
		return available[0]
	}

	desired := make([]language.Tag, len(weighted))
	for i, w := range weighted {
		desired[i] = w.tag
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[index[idx]]
}

func parseWeightedTags(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, params, hasParams := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasParams {
			params = strings.TrimSpace(params)
			if q, ok := strings.CutPrefix(params, "q="); ok {
				v, err := strconv.ParseFloat(q, 64)
				if err != nil || v < 0 || v > 1 {
					continue
				}
				quality = v
			}
		}

		if langPart == "" || langPart == "*" || quality == 0 {
			continue
		}

		tag, err := language.Parse(langPart)
		if err != nil {
			continue
		}
		tags = append(tags, weightedTag{tag: tag, quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
