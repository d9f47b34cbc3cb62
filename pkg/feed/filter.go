package feed

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ByGenre returns movies tagged with genre, compared case-insensitively.
func ByGenre(movies []Movie, genre string) []Movie {
	genre = strings.ToLower(strings.TrimSpace(genre))
	return lo.Filter(movies, func(m Movie, _ int) bool {
		return lo.ContainsBy(m.Genres, func(g string) bool {
			return strings.ToLower(g) == genre
		})
	})
}

// MaxPrice returns movies whose general price is at most limit.
func MaxPrice(movies []Movie, limit float64) []Movie {
	return lo.Filter(movies, func(m Movie, _ int) bool {
		return m.Prices.General <= limit
	})
}

// ByShowtime returns movies screening at the given time (e.g. "20:00").
func ByShowtime(movies []Movie, showtime string) []Movie {
	showtime = strings.ToLower(strings.TrimSpace(showtime))
	return lo.Filter(movies, func(m Movie, _ int) bool {
		return lo.ContainsBy(m.Showtimes, func(h string) bool {
			return strings.ToLower(h) == showtime
		})
	})
}

// ByPromotion returns movies with a promotion whose name contains promo.
func ByPromotion(movies []Movie, promo string) []Movie {
	promo = strings.ToLower(strings.TrimSpace(promo))
	return lo.Filter(movies, func(m Movie, _ int) bool {
		return lo.ContainsBy(m.Promotions, func(p string) bool {
			return strings.Contains(strings.ToLower(p), promo)
		})
	})
}

// FindByTitle returns the first movie whose title contains title.
func FindByTitle(movies []Movie, title string) (Movie, bool) {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return Movie{}, false
	}
	return lo.Find(movies, func(m Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), title)
	})
}

// Genres returns the distinct lowercased genres, sorted.
func Genres(movies []Movie) []string {
	all := lo.FlatMap(movies, func(m Movie, _ int) []string {
		return lo.Map(m.Genres, func(g string, _ int) string {
			return strings.ToLower(strings.TrimSpace(g))
		})
	})
	genres := lo.Uniq(lo.Compact(all))
	sort.Strings(genres)
	return genres
}

// Query combines the optional filters used by the movies command.
type Query struct {
	Genre    string
	MaxPrice float64 // 0 means no limit
	Showtime string
	Title    string
}

// Apply runs every non-empty filter of q over movies.
func (q Query) Apply(movies []Movie) []Movie {
	out := movies
	if strings.TrimSpace(q.Genre) != "" {
		out = ByGenre(out, q.Genre)
	}
	if q.MaxPrice > 0 {
		out = MaxPrice(out, q.MaxPrice)
	}
	if strings.TrimSpace(q.Showtime) != "" {
		out = ByShowtime(out, q.Showtime)
	}
	if title := strings.ToLower(strings.TrimSpace(q.Title)); title != "" {
		out = lo.Filter(out, func(m Movie, _ int) bool {
			return strings.Contains(strings.ToLower(m.Title), title)
		})
	}
	return out
}
