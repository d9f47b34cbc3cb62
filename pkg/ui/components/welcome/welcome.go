// Package welcome renders the splash box shown while listings load.
package welcome

import (
	"fmt"
	"strings"

	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"
	"cinemax_cli/pkg/version"

	"github.com/mattn/go-runewidth"
)

// LoadingText is the status shown until the feed arrives.
const LoadingText = "Loading listings..."

const boxWidth = 49 // inner width

// Shortcut is one key binding listed on the splash box.
type Shortcut struct {
	Key  string
	Desc string
}

// Shortcuts lists the main key bindings.
var Shortcuts = []Shortcut{
	{"Arrows", "Browse movies (hjkl)"},
	{"Enter", "Movie details"},
	{"g", "Filter by genre"},
	{"Ctrl+T", "Toggle chat"},
	{"Tab", "Switch chat focus"},
	{"Ctrl+L", "Clear conversation"},
	{"q", "Quit"},
}

// Message returns the splash box with status on its own line.
func Message(status string) string {
	makeLine := func(content string, visualWidth int) string {
		pad := boxWidth - visualWidth
		if pad < 0 {
			pad = 0
		}
		return styles.WelcomeBorderStyle.Render("│") + content + strings.Repeat(" ", pad) + styles.WelcomeBorderStyle.Render("│")
	}
	centered := func(text string, render func(...string) string) string {
		text = utils.TruncateToWidth(text, boxWidth-4)
		w := runewidth.StringWidth(text)
		leftPad := (boxWidth - w) / 2
		return makeLine(strings.Repeat(" ", leftPad)+render(text), leftPad+w)
	}

	top := styles.WelcomeBorderStyle.Render("╭" + strings.Repeat("─", boxWidth) + "╮")
	bottom := styles.WelcomeBorderStyle.Render("╰" + strings.Repeat("─", boxWidth) + "╯")
	empty := makeLine("", 0)

	lines := []string{top}
	lines = append(lines, centered("Cinemax", styles.WelcomeTitleStyle.Render))
	lines = append(lines, empty)

	if status != "" {
		lines = append(lines, centered(status, styles.TextMutedStyle.Render))
		lines = append(lines, empty)
	}

	header := "  Shortcuts:"
	lines = append(lines, makeLine(styles.WelcomeHeaderStyle.Render(header), runewidth.StringWidth(header)))
	for _, s := range Shortcuts {
		key := fmt.Sprintf("    %-10s", s.Key)
		line := styles.WelcomeKeyStyle.Render(key) + styles.TextStyle.Render(s.Desc)
		lines = append(lines, makeLine(line, runewidth.StringWidth(key)+runewidth.StringWidth(s.Desc)))
	}

	lines = append(lines, empty)
	lines = append(lines, centered(version.Summary(), styles.WelcomeVersionStyle.Render))
	lines = append(lines, bottom)

	return strings.Join(lines, "\n")
}
