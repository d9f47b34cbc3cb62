// Package picker provides the genre filter overlay for the listings.
package picker

import (
	"strings"

	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
)

// AllGenres is the first option; selecting it clears the filter.
const AllGenres = "All genres"

// GenreSelectMsg is emitted when a genre is chosen. Genre is empty for
// AllGenres.
type GenreSelectMsg struct {
	Genre string
}

// GenrePicker is a list picker over the genres present in the feed.
type GenrePicker struct {
	options  []string
	selected int
	scroll   int
	visible  bool
	width    int
	height   int
}

// NewGenrePicker creates a hidden genre picker.
func NewGenrePicker() *GenrePicker {
	return &GenrePicker{}
}

// Show displays the picker with current preselected.
func (p *GenrePicker) Show(genres []string, current string) {
	p.visible = true
	p.options = append([]string{AllGenres}, genres...)
	p.selected = 0
	p.scroll = 0

	if current != "" {
		for i, option := range p.options {
			if strings.EqualFold(option, current) {
				p.selected = i
				break
			}
		}
	}

	p.ensureVisible(p.listHeight())
}

// Hide hides the picker.
func (p *GenrePicker) Hide() {
	p.visible = false
}

// IsVisible reports whether the picker is visible.
func (p *GenrePicker) IsVisible() bool {
	return p.visible
}

// SetSize updates the picker dimensions.
func (p *GenrePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles keyboard input for the picker.
func (p *GenrePicker) Update(msg tea.KeyPressMsg) tea.Cmd {
	if !p.visible {
		return nil
	}

	listHeight := p.listHeight()

	switch msg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
		p.ensureVisible(listHeight)

	case "down", "j":
		if p.selected < len(p.options)-1 {
			p.selected++
		}
		p.ensureVisible(listHeight)

	case "pgup":
		p.selected -= listHeight
		p.ensureVisible(listHeight)

	case "pgdown":
		p.selected += listHeight
		p.ensureVisible(listHeight)

	case "enter":
		if p.selected < 0 || p.selected >= len(p.options) {
			return nil
		}
		genre := p.options[p.selected]
		if genre == AllGenres {
			genre = ""
		}
		p.Hide()
		return func() tea.Msg {
			return GenreSelectMsg{Genre: genre}
		}

	case "esc", "q":
		p.Hide()
	}

	return nil
}

// View renders the picker.
func (p *GenrePicker) View() string {
	if !p.visible {
		return ""
	}

	boxWidth, contentWidth, listHeight := p.dimensions()

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("Filter by genre"))
	content.WriteString("\n\n")

	for i := 0; i < listHeight; i++ {
		index := p.scroll + i
		if index >= len(p.options) {
			content.WriteString("\n")
			continue
		}
		line := utils.TruncateToWidth("  "+p.options[index], contentWidth)
		if index == p.selected {
			content.WriteString(styles.SelectedStyle.Render(utils.PadPlain(line, contentWidth)))
		} else {
			content.WriteString(styles.TextStyle.Render(line))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(styles.FooterStyle.Render(utils.TruncateToWidth("Up/Down Navigate | Enter Select | Esc Cancel", contentWidth)))

	return styles.BoxStyle.Width(boxWidth).Render(content.String())
}

func (p *GenrePicker) ensureVisible(listHeight int) {
	if len(p.options) == 0 {
		p.selected = 0
		p.scroll = 0
		return
	}

	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.options) {
		p.selected = len(p.options) - 1
	}

	maxScroll := len(p.options) - listHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scroll > maxScroll {
		p.scroll = maxScroll
	}

	if p.selected < p.scroll {
		p.scroll = p.selected
	}
	if p.selected >= p.scroll+listHeight {
		p.scroll = p.selected - listHeight + 1
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

func (p *GenrePicker) dimensions() (int, int, int) {
	width := p.width
	height := p.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	boxWidth := width - 2
	if boxWidth > 48 {
		boxWidth = 48
	}
	if boxWidth < 1 {
		boxWidth = 1
	}

	// border + horizontal padding
	contentWidth := boxWidth - 6
	if contentWidth < 1 {
		contentWidth = 1
	}

	// border, padding, title block, footer block
	listHeight := height - 2 - 2 - 2 - 2 - 2
	if listHeight < 1 {
		listHeight = 1
	}
	if listHeight > len(p.options) && len(p.options) > 0 {
		listHeight = len(p.options)
	}

	return boxWidth, contentWidth, listHeight
}

func (p *GenrePicker) listHeight() int {
	_, _, listHeight := p.dimensions()
	return listHeight
}
