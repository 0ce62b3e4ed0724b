package models

import "strings"

// CanonicalSizes are the size tokens every accepted spelling maps onto.
var CanonicalSizes = []string{"s", "m", "l", "xl", "xxl"}

// sizeAliases maps legacy and varied size spellings onto the canonical
// tokens. Lookup happens after trimming and lowercasing.
var sizeAliases = map[string]string{
	"small":  "s",
	"medium": "m",
	"large":  "l",
	"sm":     "s",
	"md":     "m",
	"lg":     "l",
	"xlg":    "xl",
	"xxlg":   "xxl",
	"2xl":    "xxl",
}

// NormalizeSizes canonicalizes a raw size list: each token is trimmed,
// lowercased, and mapped through the alias table. Tokens outside the table
// pass through unchanged; the backend owns validation, the client only
// canonicalizes. A nil input yields an empty list.
func NormalizeSizes(raw FlexStrings) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		token := strings.ToLower(strings.TrimSpace(s))
		if token == "" {
			continue
		}
		if canonical, ok := sizeAliases[token]; ok {
			token = canonical
		}
		out = append(out, token)
	}
	return out
}

// NormalizeColors trims and lowercases each color token. Colors are
// free-form, so there is no alias table.
func NormalizeColors(raw FlexStrings) []string {
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		token := strings.ToLower(strings.TrimSpace(c))
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}

// ResolveImages picks the effective image list for a record: a non-empty
// Images list wins over the legacy single Image field.
func ResolveImages(p Product) []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return []string{}
}

// ResolveImageURL makes an image reference renderable: absolute URLs pass
// through, server-relative paths are joined onto the asset base URL.
func ResolveImageURL(ref, baseURL string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}
