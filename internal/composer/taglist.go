package composer

import "strings"

// SplitTags turns the endpoint's comma-joined string into a tag list.
// Pieces are trimmed and empty pieces are dropped.
func SplitTags(joined string) []string {
	tags := []string{}
	for _, piece := range strings.Split(joined, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			tags = append(tags, piece)
		}
	}
	return tags
}

// RemoveTag returns tags without any entry equal to tag
func RemoveTag(tags []string, tag string) []string {
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	return kept
}
