package listing

import (
	"strings"
	"testing"

	"cinemax_cli/pkg/feed"
	"cinemax_cli/pkg/ui/components/testutils"

	"github.com/charmbracelet/x/ansi"
)

func testMovies() []feed.Movie {
	return []feed.Movie{
		{ID: 1, Title: "Dune: Parte Dos", Genres: []string{"Ciencia Ficción", "Aventura"}, Synopsis: "Paul Atreides se une a los Fremen.", Rating: 8.7, Duration: 166, Classification: "PG-13", Showtimes: []string{"14:00", "20:00"}, Prices: feed.Prices{General: 25, Kids: 18, Seniors: 15, VIP: 40}},
		{ID: 2, Title: "Intensamente 2", Genres: []string{"Animación", "Comedia"}, Synopsis: "Riley entra a la adolescencia.", Rating: 8.1, Duration: 96, Classification: "ATP", Showtimes: []string{"11:00"}, Prices: feed.Prices{General: 22}},
		{ID: 3, Title: "Oppenheimer", Genres: []string{"Drama"}, Synopsis: "La historia del padre de la bomba atómica.", Rating: 8.4, Duration: 180, Classification: "R", Showtimes: []string{"19:30"}, Prices: feed.Prices{General: 25}},
		{ID: 4, Title: "Kung Fu Panda 4", Genres: []string{"Animación"}, Rating: 6.9, Duration: 94, Classification: "ATP"},
	}
}

func newTestGrid(width, height int) *Grid {
	g := New()
	g.SetSize(width, height)
	g.SetMovies(testMovies())
	return g
}

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{40, 1},
		{79, 1},
		{80, 2},
		{119, 2},
		{120, 3},
		{200, 3},
	}
	for _, tt := range tests {
		if got := ColumnsFor(tt.width); got != tt.want {
			t.Errorf("ColumnsFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestGrid_ViewShowsCards(t *testing.T) {
	g := newTestGrid(130, 40)

	view := ansi.Strip(g.View())
	for _, want := range []string{"Dune: Parte Dos", "Intensamente 2", "Oppenheimer", "8.7/10", "166 min", "20:00", "S/25.00"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestGrid_SynopsisClampedToThreeLines(t *testing.T) {
	m := testMovies()[0]
	m.Synopsis = strings.Repeat("palabra ", 80)

	card := ansi.Strip(renderCard(m, 40, false))
	if n := strings.Count(card, "palabra"); n == 80 {
		t.Error("Expected synopsis to be clamped")
	}
	if lines := strings.Split(card, "\n"); len(lines) != cardHeight {
		t.Errorf("Expected card height %d, got %d", cardHeight, len(lines))
	}
}

func TestGrid_Navigation(t *testing.T) {
	g := newTestGrid(100, 40) // two columns

	g.Update(testutils.TestKeyRight)
	assertSelected(t, g, 2)

	g.Update(testutils.TestKeyDown)
	assertSelected(t, g, 4)

	g.Update(testutils.NewTextKeyPressMsg("h"))
	assertSelected(t, g, 3)

	g.Update(testutils.NewTextKeyPressMsg("k"))
	assertSelected(t, g, 1)

	g.Update(testutils.TestKeyUp)
	assertSelected(t, g, 1)

	g.Update(testutils.TestKeyLeft)
	assertSelected(t, g, 1)
}

func TestGrid_DownOnShortLastRow(t *testing.T) {
	g := New()
	g.SetSize(130, 40) // three columns
	g.SetMovies(testMovies())

	g.Update(testutils.TestKeyRight)
	g.Update(testutils.TestKeyRight)
	g.Update(testutils.TestKeyDown)
	assertSelected(t, g, 4)
}

func TestGrid_EnterOpensDetail(t *testing.T) {
	g := newTestGrid(60, 40)
	g.Update(testutils.TestKeyDown)

	cmd := g.Update(testutils.TestKeyEnter)
	if cmd == nil {
		t.Fatal("Expected OpenDetailMsg command")
	}
	msg, ok := cmd().(OpenDetailMsg)
	if !ok {
		t.Fatalf("Expected OpenDetailMsg, got %T", cmd())
	}
	if msg.Movie.ID != 2 {
		t.Errorf("Expected movie 2, got %d", msg.Movie.ID)
	}
}

func TestGrid_GenreFilter(t *testing.T) {
	g := newTestGrid(130, 40)
	g.Update(testutils.TestKeyRight)

	g.SetGenre("animación")
	if len(g.Movies()) != 2 {
		t.Fatalf("Expected 2 animated movies, got %d", len(g.Movies()))
	}
	assertSelected(t, g, 2)
	if len(g.All()) != 4 {
		t.Errorf("Expected catalog untouched, got %d", len(g.All()))
	}

	g.SetGenre("")
	if len(g.Movies()) != 4 {
		t.Errorf("Expected filter cleared, got %d", len(g.Movies()))
	}
}

func TestGrid_EmptyStates(t *testing.T) {
	g := New()
	g.SetSize(60, 10)

	if !strings.Contains(ansi.Strip(g.View()), "No movies to show") {
		t.Errorf("Expected empty-state text, got:\n%s", g.View())
	}
	if cmd := g.Update(testutils.TestKeyEnter); cmd != nil {
		t.Error("Expected Enter to do nothing on an empty grid")
	}
	if _, ok := g.Selected(); ok {
		t.Error("Expected no selection on an empty grid")
	}

	g.SetMovies(testMovies())
	g.SetGenre("terror")
	if !strings.Contains(ansi.Strip(g.View()), `No movies for genre "terror"`) {
		t.Errorf("Expected genre empty-state text, got:\n%s", g.View())
	}
}

func TestGrid_ScrollsToSelection(t *testing.T) {
	g := newTestGrid(60, cardHeight*2) // one column, two visible rows

	for i := 0; i < 3; i++ {
		g.Update(testutils.TestKeyDown)
	}
	if g.scrollRow != 2 {
		t.Errorf("Expected scrollRow 2, got %d", g.scrollRow)
	}
	view := ansi.Strip(g.View())
	if strings.Contains(view, "Dune") || !strings.Contains(view, "Kung Fu Panda 4") {
		t.Errorf("Expected window on the last two movies, got:\n%s", view)
	}
}

func assertSelected(t *testing.T, g *Grid, id int) {
	t.Helper()
	m, ok := g.Selected()
	if !ok {
		t.Fatal("Expected a selection")
	}
	if m.ID != id {
		t.Fatalf("Expected movie %d selected, got %d", id, m.ID)
	}
}
