package utils

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateToWidth truncates text (which may contain ANSI styling) to width,
// ending with an ellipsis when something was cut.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width <= 3 {
		return ansi.Truncate(text, width, "")
	}
	return ansi.Truncate(text, width, "...")
}

// PadPlain pads text with spaces to width
func PadPlain(text string, width int) string {
	if width <= 0 {
		return text
	}
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// PadStyled pads text with spaces to width, accounting for style
func PadStyled(text string, width int) string {
	if width <= 0 {
		return text
	}
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// WrapWords wraps plain text at word boundaries so no line exceeds width.
// Words wider than width are split by display width.
func WrapWords(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			for _, part := range SplitByWidth(word, width) {
				partWidth := runewidth.StringWidth(part)
				if lineWidth > 0 && lineWidth+1+partWidth > width {
					lines = append(lines, line.String())
					line.Reset()
					lineWidth = 0
				}
				if lineWidth > 0 {
					line.WriteByte(' ')
					lineWidth++
				}
				line.WriteString(part)
				lineWidth += partWidth
			}
		}
		lines = append(lines, line.String())
	}
	return lines
}

// SplitByWidth cuts text into chunks no wider than width.
func SplitByWidth(text string, width int) []string {
	if width <= 0 || text == "" {
		return []string{text}
	}

	var parts []string
	var sb strings.Builder
	currentWidth := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width && currentWidth > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
			currentWidth = 0
		}
		sb.WriteRune(r)
		currentWidth += rw
	}
	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	return parts
}

// ClampLines keeps at most max lines, marking the cut with an ellipsis on
// the last kept line.
func ClampLines(lines []string, max, width int) []string {
	if max <= 0 || len(lines) <= max {
		return lines
	}
	out := append([]string(nil), lines[:max]...)
	last := out[max-1]
	if runewidth.StringWidth(last)+3 > width {
		last = TruncateToWidth(last, width-3)
		last = strings.TrimSuffix(last, "...")
	}
	out[max-1] = last + "..."
	return out
}
