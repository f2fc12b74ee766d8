package tags

import (
	"fmt"
	"strconv"
	"strings"

	"blogtags/internal/shared/constants"
)

const promptTemplate = `Generate %d tags for my blog post with the title "%s". In one line with commas.`

// BuildPrompt renders the completion prompt for a title and tag count
func BuildPrompt(title string, size int) string {
	return fmt.Sprintf(promptTemplate, size, title)
}

// ParseSize accepts only base-10 integers within the allowed tag count range
func ParseSize(raw string) (int, error) {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, raw)
	}
	if size < constants.MIN_TAG_COUNT || size > constants.MAX_TAG_COUNT {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return size, nil
}

// CleanTags turns hash-prefixed or space-separated completion text into one
// token: every '#' becomes a space and all whitespace is dropped, so
// "\n\n#go, #mono repo" becomes "go,monorepo".
func CleanTags(text string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(text, "#", " ")), "")
}
