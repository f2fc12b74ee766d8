package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// titleFromFile returns the title of a markdown post: the frontmatter
// title when present, otherwise the file name.
func titleFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read post: %w", err)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	if strings.HasPrefix(content, "---\n") {
		parts := strings.SplitN(content, "---\n", 3)
		if len(parts) == 3 {
			var frontmatter struct {
				Title string `yaml:"title"`
			}
			if err := yaml.Unmarshal([]byte(parts[1]), &frontmatter); err == nil {
				if title := strings.TrimSpace(frontmatter.Title); title != "" {
					return title, nil
				}
			}
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.TrimSpace(name), nil
}
