// Package render holds screen geometry helpers for the root model.
package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	// HeaderHeight is the cinema name bar.
	HeaderHeight = 1
	// StatusBarHeight is the bottom bar.
	StatusBarHeight = 1

	minGridWidth = 30
	minChatWidth = 36
	maxChatWidth = 60
)

// CenterRect returns a rectangle centered within the screen bounds.
// Width/height are clamped to the screen size before centering.
func CenterRect(panelW, panelH, screenW, screenH int) (x, y, w, h int) {
	w = max(panelW, 0)
	h = max(panelH, 0)
	screenW = max(screenW, 0)
	screenH = max(screenH, 0)
	w = min(w, screenW)
	h = min(h, screenH)
	x = (screenW - w) / 2
	y = (screenH - h) / 2
	return ClampRect(x, y, w, h, screenW, screenH)
}

// ClampRect clamps a rectangle to the screen bounds.
func ClampRect(x, y, w, h, screenW, screenH int) (int, int, int, int) {
	screenW = max(screenW, 0)
	screenH = max(screenH, 0)
	w = max(w, 0)
	h = max(h, 0)
	x = min(max(x, 0), screenW)
	y = min(max(y, 0), screenH)
	if x+w > screenW {
		w = screenW - x
	}
	if y+h > screenH {
		h = screenH - y
	}
	return x, y, w, h
}

// BodyHeight is what remains for the grid and chat panel after the header
// and status bar.
func BodyHeight(height int) int {
	return max(height-HeaderHeight-StatusBarHeight, 0)
}

// SplitWidth divides the screen between the listing grid and the chat
// panel. With the chat closed the grid gets everything. On narrow screens
// the chat panel takes the full width.
func SplitWidth(width int, chatOpen bool) (gridW, chatW int) {
	if !chatOpen {
		return width, 0
	}
	if width < minGridWidth+minChatWidth {
		return 0, width
	}
	chatW = min(max(width*2/5, minChatWidth), maxChatWidth)
	return width - chatW, chatW
}

// Overlay draws panel centered over base, which is a block of screenW x
// screenH cells. Cells of base outside the panel are kept.
func Overlay(base, panel string, screenW, screenH int) string {
	if panel == "" {
		return base
	}
	panelLines := strings.Split(panel, "\n")
	panelW := 0
	for _, line := range panelLines {
		panelW = max(panelW, ansi.StringWidth(line))
	}

	x, y, w, h := CenterRect(panelW, len(panelLines), screenW, screenH)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < screenH {
		baseLines = append(baseLines, "")
	}

	for i := 0; i < h; i++ {
		row := y + i
		line := baseLines[row]
		left := padTo(ansi.Truncate(line, x, ""), x)
		middle := padTo(ansi.Truncate(panelLines[i], w, ""), w)
		right := ansi.TruncateLeft(line, x+w, "")
		baseLines[row] = left + middle + right
	}
	return strings.Join(baseLines, "\n")
}

func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
