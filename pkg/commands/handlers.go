package commands

import (
	"fmt"
	"strconv"
	"strings"

	"cinemax_cli/pkg/feed"
)

// GenreHandler handles the /genre command
type GenreHandler struct{}

func (h *GenreHandler) Name() string        { return "/genre" }
func (h *GenreHandler) Description() string { return "Filter listings by genre" }

func (h *GenreHandler) Execute(ctx *Context) *Result {
	genre := strings.ToLower(ctx.Arg())
	genres := feed.Genres(ctx.Catalog.Movies)
	if genre == "" {
		return &Result{
			Title:   "Genres",
			Content: "Usage: `/genre <name>`\n\nAvailable: " + strings.Join(genres, ", "),
		}
	}

	matches := feed.ByGenre(ctx.Catalog.Movies, genre)
	if len(matches) == 0 {
		return &Result{
			Title:   "Genres",
			Content: fmt.Sprintf("No movies for genre %q.\n\nAvailable: %s", genre, strings.Join(genres, ", ")),
		}
	}
	return &Result{
		Title:   "Genre",
		Content: fmt.Sprintf("Showing %d %s movies.", len(matches), genre),
		Action:  ActionSetGenre,
		Genre:   genre,
	}
}

// AllHandler handles the /all command
type AllHandler struct{}

func (h *AllHandler) Name() string        { return "/all" }
func (h *AllHandler) Description() string { return "Clear the genre filter" }

func (h *AllHandler) Execute(ctx *Context) *Result {
	return &Result{
		Title:   "Genre",
		Content: fmt.Sprintf("Showing all %d movies.", len(ctx.Catalog.Movies)),
		Action:  ActionSetGenre,
	}
}

// FindHandler handles the /find command
type FindHandler struct{}

func (h *FindHandler) Name() string        { return "/find" }
func (h *FindHandler) Description() string { return "Open the details of a movie by title" }

func (h *FindHandler) Execute(ctx *Context) *Result {
	title := ctx.Arg()
	if title == "" {
		return &Result{Title: "Find", Content: "Usage: `/find <title>`"}
	}
	movie, ok := feed.FindByTitle(ctx.Catalog.Movies, title)
	if !ok {
		return &Result{Title: "Find", Content: fmt.Sprintf("No movie matches %q.", title)}
	}
	return &Result{
		Title:   movie.Title,
		Content: feed.FormatDetails(movie),
		Action:  ActionShowMovie,
		Movie:   movie,
	}
}

// PriceHandler handles the /price command
type PriceHandler struct{}

func (h *PriceHandler) Name() string        { return "/price" }
func (h *PriceHandler) Description() string { return "List movies up to a general ticket price" }

func (h *PriceHandler) Execute(ctx *Context) *Result {
	limit, err := strconv.ParseFloat(strings.TrimPrefix(ctx.Arg(), "S/"), 64)
	if err != nil || limit <= 0 {
		return &Result{
			Title:   "Price",
			Content: "Usage: `/price <max>`, e.g. `/price 20`",
			Error:   fmt.Errorf("invalid price %q", ctx.Arg()),
		}
	}
	matches := feed.MaxPrice(ctx.Catalog.Movies, limit)
	return &Result{
		Title:   "Price",
		Content: movieList(fmt.Sprintf("Movies up to %s", feed.FormatPrice(limit)), matches, func(m feed.Movie) string {
			return feed.FormatPrice(m.Prices.General)
		}),
	}
}

// ShowtimeHandler handles the /showtime command
type ShowtimeHandler struct{}

func (h *ShowtimeHandler) Name() string        { return "/showtime" }
func (h *ShowtimeHandler) Description() string { return "List movies screening at a time" }

func (h *ShowtimeHandler) Execute(ctx *Context) *Result {
	showtime := ctx.Arg()
	if showtime == "" {
		return &Result{Title: "Showtime", Content: "Usage: `/showtime <hh:mm>`"}
	}
	matches := feed.ByShowtime(ctx.Catalog.Movies, showtime)
	return &Result{
		Title: "Showtime",
		Content: movieList("Movies at "+showtime, matches, func(m feed.Movie) string {
			return m.Classification
		}),
	}
}

// PromosHandler handles the /promos command
type PromosHandler struct{}

func (h *PromosHandler) Name() string        { return "/promos" }
func (h *PromosHandler) Description() string { return "Show promotions and combos" }

func (h *PromosHandler) Execute(ctx *Context) *Result {
	var sb strings.Builder
	sb.WriteString("## Promotions\n\n")
	if len(ctx.Catalog.Promotions) == 0 {
		sb.WriteString("No promotions right now.\n")
	}
	for _, p := range ctx.Catalog.Promotions {
		fmt.Fprintf(&sb, "- **%s:** %s\n", p.Name, p.Description)
	}

	if len(ctx.Catalog.Combos) > 0 {
		sb.WriteString("\n## Combos\n\n")
		for _, c := range ctx.Catalog.Combos {
			fmt.Fprintf(&sb, "- **%s** (%s): %s\n", c.Name, feed.FormatPrice(c.Price), c.Contents)
		}
	}

	if promo := ctx.Arg(); promo != "" {
		matches := feed.ByPromotion(ctx.Catalog.Movies, promo)
		sb.WriteString("\n" + movieList(fmt.Sprintf("Movies with %q", promo), matches, func(m feed.Movie) string {
			return strings.Join(m.Promotions, ", ")
		}))
	}

	return &Result{Title: "Promotions", Content: sb.String()}
}

// ClearHandler handles the /clear command
type ClearHandler struct{}

func (h *ClearHandler) Name() string        { return "/clear" }
func (h *ClearHandler) Description() string { return "Clear the conversation" }

func (h *ClearHandler) Execute(ctx *Context) *Result {
	return &Result{Title: "Chat", Action: ActionClearChat}
}

// SessionHandler handles the /session command
type SessionHandler struct{}

func (h *SessionHandler) Name() string        { return "/session" }
func (h *SessionHandler) Description() string { return "Show the chat session id" }

func (h *SessionHandler) Execute(ctx *Context) *Result {
	return &Result{
		Title:   "Session",
		Content: fmt.Sprintf("Session id: `%s`", ctx.SessionID),
	}
}

// HelpHandler handles the /help command
type HelpHandler struct {
	dispatcher *Dispatcher
}

func (h *HelpHandler) Name() string        { return "/help" }
func (h *HelpHandler) Description() string { return "Show help" }

func (h *HelpHandler) Execute(ctx *Context) *Result {
	var sb strings.Builder
	sb.WriteString("## Commands\n\n")
	for _, handler := range h.dispatcher.Handlers() {
		fmt.Fprintf(&sb, "- `%s` %s\n", handler.Name(), handler.Description())
	}
	sb.WriteString("\nAnything else is sent to the assistant.\n")
	return &Result{Title: "Help", Content: sb.String()}
}

func movieList(heading string, movies []feed.Movie, extra func(feed.Movie) string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s\n\n", heading)
	if len(movies) == 0 {
		sb.WriteString("No movies found.\n")
		return sb.String()
	}
	for _, m := range movies {
		fmt.Fprintf(&sb, "- **%s** (%s)\n", m.Title, extra(m))
	}
	return sb.String()
}
