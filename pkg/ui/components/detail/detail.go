// Package detail shows the full description of one movie, or any other
// markdown document such as command output.
package detail

import (
	"log/slog"
	"strings"

	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
)

const footerLabel = "Up/Down Scroll | Esc/q Close"

// CloseMsg is sent when the panel is closed.
type CloseMsg struct{}

// Panel renders a movie's markdown description in a scrollable viewport.
type Panel struct {
	movie    feed.Movie
	title    string
	markdown string
	visible  bool
	width    int
	height   int
	viewport viewport.Model
	// width the content was last rendered at
	renderedWidth int
}

// New creates a hidden detail panel.
func New() *Panel {
	return &Panel{viewport: viewport.New()}
}

// Show opens the panel on movie.
func (p *Panel) Show(movie feed.Movie) {
	p.ShowMarkdown(movie.Title, feed.FormatDetails(movie))
	p.movie = movie
}

// ShowMarkdown opens the panel on an arbitrary markdown document.
func (p *Panel) ShowMarkdown(title, md string) {
	p.movie = feed.Movie{}
	p.title = title
	p.markdown = md
	p.visible = true
	p.renderedWidth = 0
	p.layout()
	p.viewport.GotoTop()
}

// Hide closes the panel.
func (p *Panel) Hide() {
	p.visible = false
}

// IsVisible reports whether the panel is open.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// Movie returns the movie on display, zero for other documents.
func (p *Panel) Movie() feed.Movie {
	return p.movie
}

// SetSize sets the area available to the panel.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.visible {
		p.layout()
	}
}

// Update handles keyboard input while the panel is open.
func (p *Panel) Update(msg tea.KeyPressMsg) tea.Cmd {
	if !p.visible {
		return nil
	}

	switch msg.String() {
	case "esc", "q":
		p.Hide()
		return func() tea.Msg { return CloseMsg{} }
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the panel.
func (p *Panel) View() string {
	if !p.visible {
		return ""
	}

	boxWidth, contentWidth, _ := p.dimensions()

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render(utils.TruncateToWidth(p.title, contentWidth)))
	content.WriteString("\n\n")
	content.WriteString(p.viewport.View())
	content.WriteString("\n\n")
	content.WriteString(styles.FooterStyle.Render(utils.TruncateToWidth(footerLabel, contentWidth)))

	return styles.BoxStyle.Width(boxWidth).Render(content.String())
}

func (p *Panel) layout() {
	_, contentWidth, bodyHeight := p.dimensions()
	p.viewport.SetWidth(contentWidth)
	p.viewport.SetHeight(bodyHeight)
	if contentWidth != p.renderedWidth {
		p.viewport.SetContent(RenderMarkdown(p.markdown, contentWidth))
		p.renderedWidth = contentWidth
	}
}

func (p *Panel) dimensions() (int, int, int) {
	width := p.width
	height := p.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	boxWidth := width - 4
	if boxWidth > 90 {
		boxWidth = 90
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	// border + BoxStyle padding
	contentWidth := boxWidth - 6
	if contentWidth < 1 {
		contentWidth = 1
	}

	// border, vertical padding, title block, footer block
	bodyHeight := height - 2 - 2 - 2 - 2 - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	return boxWidth, contentWidth, bodyHeight
}

// RenderMarkdown styles md for the terminal, falling back to the raw text
// when the renderer fails.
func RenderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("detail_renderer_init_failed", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("detail_render_failed", "error", err)
		return md
	}
	return strings.Trim(out, "\n")
}
