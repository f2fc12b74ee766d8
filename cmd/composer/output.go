package main

import (
	"strings"

	"github.com/fatih/color"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func failure(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

// chipLine lists tags the way the interactive composer shows them
func chipLine(tags []string) string {
	if len(tags) == 0 {
		return faint("(no tags)")
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, cyan("["+t+"]"))
	}
	return strings.Join(parts, " ")
}
