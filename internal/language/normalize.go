package language

import "strings"

// NormalizeTag lowercases a language tag and collapses its separators to
// "-". Blank or malformed tags (anything outside ASCII letters) normalize
// to the empty string.
func NormalizeTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return ""
	}
	tag = strings.ReplaceAll(tag, "_", "-")

	var parts []string
	for _, part := range strings.Split(tag, "-") {
		if part == "" {
			continue
		}
		for _, r := range part {
			if r < 'a' || r > 'z' {
				return ""
			}
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "-")
}

// NormalizeCode reduces a tag to its primary subtag ("en" from "en-US").
func NormalizeCode(raw string) string {
	tag := NormalizeTag(raw)
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		return tag[:i]
	}
	return tag
}

// IsAuto reports whether the selector is the auto-detect sentinel.
func IsAuto(selector string) bool {
	return strings.EqualFold(strings.TrimSpace(selector), Auto)
}
