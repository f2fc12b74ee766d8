package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	chipBase          = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	chipStyle         = chipBase.Background(lipgloss.Color("#3D6DFF")).Foreground(lipgloss.Color("#FFFFFF"))
	selectedChipStyle = chipBase.Background(lipgloss.Color("#F0AD4E")).Foreground(lipgloss.Color("#111111"))
)

// noColor honors NO_COLOR in addition to the explicit setting
func noColor(explicit bool) bool {
	return explicit || os.Getenv("NO_COLOR") != ""
}

// chipsView renders tags as chips. selected is the index of the chip under
// the cursor, or -1 when the chip row is not focused.
func chipsView(tags []string, selected int, plain bool) string {
	if len(tags) == 0 {
		return ""
	}
	plain = noColor(plain)

	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		parts = append(parts, renderChip(tag, i == selected, plain))
	}
	return strings.Join(parts, " ")
}

func renderChip(tag string, selected, plain bool) string {
	if plain {
		if selected {
			return fmt.Sprintf("[>%s<]", tag)
		}
		return fmt.Sprintf("[%s]", tag)
	}
	if selected {
		return selectedChipStyle.Render(tag + " x")
	}
	return chipStyle.Render(tag)
}
