package composer

import (
	"fmt"
	"strings"
)

// Format selects how the tag list is joined when copied.
type Format string

const (
	FormatNone  Format = "no separator"
	FormatHash  Format = "#"
	FormatDash  Format = "-"
	FormatComma Format = ","
)

// DefaultFormat is the mode a new session starts with
const DefaultFormat = FormatHash

// Formats lists every mode in the order the selectors show them
var Formats = []Format{FormatNone, FormatHash, FormatDash, FormatComma}

// ParseFormat accepts a mode by its display value
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %q, %q, %q, %q)", s, FormatNone, FormatHash, FormatDash, FormatComma)
}

// Join builds the clipboard text for tags
func (f Format) Join(tags []string) string {
	switch f {
	case FormatHash:
		var sb strings.Builder
		for _, tag := range tags {
			sb.WriteString("#")
			sb.WriteString(tag)
			sb.WriteString(" ")
		}
		return sb.String()
	case FormatNone:
		return strings.Join(tags, " ")
	case FormatDash:
		return strings.Join(tags, " - ")
	default:
		return strings.Join(tags, ",")
	}
}

// Next returns the following mode, wrapping around
func (f Format) Next() Format {
	for i, candidate := range Formats {
		if candidate == f {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return DefaultFormat
}

func (f Format) String() string {
	return string(f)
}
