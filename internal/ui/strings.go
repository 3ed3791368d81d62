package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens value to limit terminal cells, ending in "..." when cut.
// Widths are measured in cells so emoji in exercise names count as two.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// truncateMiddle cuts cells from the middle of value so a path keeps both its
// root and its file name.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	width := ansi.StringWidth(value)
	if limit <= 0 || width <= limit {
		return value
	}
	if limit <= 2 {
		return ansi.Truncate(value, limit, "")
	}
	keep := limit - 1
	head := keep / 2
	tail := keep - head
	return ansi.Truncate(value, head, "") + "…" + ansi.TruncateLeft(value, width-tail, "")
}
