// Package listing renders the movie grid.
package listing

import (
	"fmt"
	"strings"

	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/ui/components/utils"
	"cinemax_cli/pkg/ui/styles"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	synopsisLines = 3
	// title, tags, synopsis, meta, showtimes, prices
	cardBodyLines = 5 + synopsisLines
	// borders
	cardHeight = cardBodyLines + 2
	// border + padding
	cardChrome = 4
)

// OpenDetailMsg asks the owner to show the details of a movie.
type OpenDetailMsg struct {
	Movie feed.Movie
}

// Grid is a responsive grid of movie cards with a cursor.
type Grid struct {
	all    []feed.Movie
	movies []feed.Movie
	genre  string

	selected  int
	scrollRow int
	width     int
	height    int
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{}
}

// SetMovies replaces the catalog and reapplies the genre filter.
func (g *Grid) SetMovies(movies []feed.Movie) {
	g.all = movies
	g.apply()
}

// SetGenre filters the grid by genre. An empty genre shows everything.
func (g *Grid) SetGenre(genre string) {
	g.genre = genre
	g.apply()
}

// Genre returns the active genre filter.
func (g *Grid) Genre() string {
	return g.genre
}

// All returns the unfiltered catalog.
func (g *Grid) All() []feed.Movie {
	return g.all
}

// Movies returns the movies currently shown.
func (g *Grid) Movies() []feed.Movie {
	return g.movies
}

// Selected returns the movie under the cursor.
func (g *Grid) Selected() (feed.Movie, bool) {
	if g.selected < 0 || g.selected >= len(g.movies) {
		return feed.Movie{}, false
	}
	return g.movies[g.selected], true
}

// SetSize sets the grid dimensions.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Columns returns how many cards fit side by side.
func (g *Grid) Columns() int {
	return ColumnsFor(g.width)
}

// ColumnsFor maps a width to the number of grid columns.
func ColumnsFor(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}

// Update handles navigation keys.
func (g *Grid) Update(msg tea.KeyPressMsg) tea.Cmd {
	if len(g.movies) == 0 {
		return nil
	}

	cols := g.Columns()
	switch msg.String() {
	case "left", "h":
		if g.selected > 0 {
			g.selected--
		}
	case "right", "l":
		if g.selected < len(g.movies)-1 {
			g.selected++
		}
	case "up", "k":
		if g.selected-cols >= 0 {
			g.selected -= cols
		}
	case "down", "j":
		if g.selected+cols < len(g.movies) {
			g.selected += cols
		} else if g.selected/cols < (len(g.movies)-1)/cols {
			// short last row
			g.selected = len(g.movies) - 1
		}
	case "home":
		g.selected = 0
	case "end":
		g.selected = len(g.movies) - 1
	case "enter":
		movie := g.movies[g.selected]
		return func() tea.Msg {
			return OpenDetailMsg{Movie: movie}
		}
	}

	g.ensureVisible()
	return nil
}

// View renders the visible rows of the grid.
func (g *Grid) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	if len(g.movies) == 0 {
		return g.renderEmpty()
	}

	cols := g.Columns()
	cardWidth := g.width / cols

	var rows []string
	for row := g.scrollRow; row < g.scrollRow+g.visibleRows(); row++ {
		start := row * cols
		if start >= len(g.movies) {
			break
		}
		end := start + cols
		if end > len(g.movies) {
			end = len(g.movies)
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(g.movies[i], cardWidth, i == g.selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *Grid) renderEmpty() string {
	text := "No movies to show"
	if g.genre != "" {
		text = fmt.Sprintf("No movies for genre %q", g.genre)
	}
	return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center,
		styles.PlaceholderStyle.Render(utils.TruncateToWidth(text, g.width)))
}

func (g *Grid) apply() {
	if strings.TrimSpace(g.genre) == "" {
		g.movies = g.all
	} else {
		g.movies = feed.ByGenre(g.all, g.genre)
	}
	g.selected = 0
	g.scrollRow = 0
}

func (g *Grid) visibleRows() int {
	rows := g.height / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func (g *Grid) ensureVisible() {
	if len(g.movies) == 0 {
		g.selected = 0
		g.scrollRow = 0
		return
	}
	if g.selected >= len(g.movies) {
		g.selected = len(g.movies) - 1
	}
	if g.selected < 0 {
		g.selected = 0
	}

	row := g.selected / g.Columns()
	visible := g.visibleRows()
	if row < g.scrollRow {
		g.scrollRow = row
	}
	if row >= g.scrollRow+visible {
		g.scrollRow = row - visible + 1
	}
}

func renderCard(m feed.Movie, width int, selected bool) string {
	contentWidth := width - cardChrome
	if contentWidth < 1 {
		contentWidth = 1
	}

	lines := make([]string, 0, cardBodyLines)
	lines = append(lines, styles.TextBoldStyle.Render(utils.TruncateToWidth(m.Title, contentWidth)))
	lines = append(lines, renderBadges(m.Genres, styles.TagStyle, contentWidth))

	synopsis := utils.ClampLines(utils.WrapWords(strings.TrimSpace(m.Synopsis), contentWidth), synopsisLines, contentWidth)
	for i := 0; i < synopsisLines; i++ {
		line := ""
		if i < len(synopsis) {
			line = synopsis[i]
		}
		lines = append(lines, styles.TextMutedStyle.Render(line))
	}

	meta := styles.RatingStyle.Render("★ "+feed.FormatRating(m.Rating)) + " " +
		styles.TextStyle.Render(fmt.Sprintf("%d min · %s", m.Duration, m.Classification))
	lines = append(lines, ansi.Truncate(meta, contentWidth, ""))
	lines = append(lines, renderBadges(m.Showtimes, styles.ShowtimeStyle, contentWidth))
	lines = append(lines, styles.TextStyle.Render(utils.TruncateToWidth(formatPrices(m.Prices), contentWidth)))

	for i := range lines {
		lines[i] = utils.PadStyled(lines[i], contentWidth)
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func renderBadges(values []string, style lipgloss.Style, width int) string {
	badges := make([]string, 0, len(values))
	for _, v := range values {
		badges = append(badges, style.Render(v))
	}
	return ansi.Truncate(strings.Join(badges, " "), width, "")
}

func formatPrices(p feed.Prices) string {
	return fmt.Sprintf("General %s · Kids %s · Seniors %s · VIP %s",
		feed.FormatPrice(p.General),
		feed.FormatPrice(p.Kids),
		feed.FormatPrice(p.Seniors),
		feed.FormatPrice(p.VIP),
	)
}
