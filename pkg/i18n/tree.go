package i18n

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/language"
)

// Translations is a nested catalog: string keys mapping to messages,
// plural mappings or further nesting.
type Translations = map[string]any

// lookupPath resolves segments one level at a time.
func lookupPath(tree Translations, segments []string) (any, bool) {
	if tree == nil || len(segments) == 0 {
		return nil, false
	}

	var node any = tree
	for _, seg := range segments {
		m, ok := node.(Translations)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// deepMerge copies src into dst, merging nested mappings instead of
// replacing them.
func deepMerge(dst, src Translations) {
	for k, v := range src {
		srcMap, srcIsMap := v.(Translations)
		dstMap, dstIsMap := dst[k].(Translations)
		if srcIsMap && dstIsMap {
			deepMerge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			cp := make(Translations, len(srcMap))
			deepMerge(cp, srcMap)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

// normalizeTree converts the map shapes produced by the various decoders
// into Translations.
func normalizeTree(src Translations) Translations {
	out := make(Translations, len(src))
	for k, v := range src {
		out[k] = normalizeNode(v)
	}
	return out
}

func normalizeNode(v any) any {
	switch n := v.(type) {
	case Translations:
		return normalizeTree(n)
	case map[string]string:
		out := make(Translations, len(n))
		for k, s := range n {
			out[k] = s
		}
		return out
	case map[any]any:
		out := make(Translations, len(n))
		for k, s := range n {
			out[fmt.Sprint(k)] = normalizeNode(s)
		}
		return out
	default:
		return v
	}
}

// flatten converts a nested tree into dotted keys. Non-string leaves are
// rendered with fmt.
func flatten(tree Translations, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range tree {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + Separator + key
		}

		switch v := value.(type) {
		case nil:
		case string:
			result[fullKey] = v
		case Translations:
			maps.Copy(result, flatten(v, fullKey))
		default:
			result[fullKey] = fmt.Sprint(v)
		}
	}

	return result
}

// Unflatten builds a nested tree from dotted keys.
// A key that conflicts with an existing leaf replaces it.
func Unflatten(flat map[string]string) Translations {
	tree := make(Translations)
	for key, value := range flat {
		SetPath(tree, key, value)
	}
	return tree
}

// SetPath stores value at a dotted key, creating intermediate mappings.
func SetPath(tree Translations, key string, value any) {
	segments := splitKey(key)
	if len(segments) == 0 {
		return
	}

	node := tree
	for _, seg := range segments[:len(segments)-1] {
		next, ok := node[seg].(Translations)
		if !ok {
			next = make(Translations)
			node[seg] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value
}

// NormalizeLocale canonicalizes a locale code: "pt_br" and "PT-br" both
// become "pt-BR". Codes that are not valid BCP 47 tags are only trimmed
// and have underscores replaced.
func NormalizeLocale(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}
