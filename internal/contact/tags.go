package contact

import (
	"regexp"
	"strings"
)

// tagPattern matches '#' immediately followed by word characters (any script).
var tagPattern = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// ParseTags extracts hashtags from text, without the leading '#'.
func ParseTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, len(matches))
	for i, m := range matches {
		tags[i] = m[1]
	}
	return tags
}

// HasTag reports whether text contains #tag, ignoring letter case.
// A leading '#' in tag is ignored.
func HasTag(text, tag string) bool {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if tag == "" {
		return false
	}
	for _, t := range ParseTags(text) {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
