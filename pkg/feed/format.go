package feed

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPrice renders an amount in soles, e.g. "S/25.00".
func FormatPrice(amount float64) string {
	return "S/" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatRating renders a rating out of ten, e.g. "8.5/10".
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64) + "/10"
}

// FormatDetails renders the full markdown description of a movie.
func FormatDetails(m Movie) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s\n\n", m.Title)
	fmt.Fprintf(&sb, "- **Genre:** %s\n", joinOrDash(m.Genres))
	fmt.Fprintf(&sb, "- **Duration:** %d min\n", m.Duration)
	fmt.Fprintf(&sb, "- **Classification:** %s\n", orDash(m.Classification))
	fmt.Fprintf(&sb, "- **Showtimes:** %s\n", joinOrDash(m.Showtimes))
	fmt.Fprintf(&sb, "- **Rating:** %s\n", FormatRating(m.Rating))

	if synopsis := strings.TrimSpace(m.Synopsis); synopsis != "" {
		fmt.Fprintf(&sb, "\n%s\n", synopsis)
	}

	sb.WriteString("\n### Prices\n\n")
	sb.WriteString("| General | Kids | Seniors | VIP |\n")
	sb.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
		FormatPrice(m.Prices.General),
		FormatPrice(m.Prices.Kids),
		FormatPrice(m.Prices.Seniors),
		FormatPrice(m.Prices.VIP),
	)

	if len(m.Promotions) > 0 {
		fmt.Fprintf(&sb, "\n**Promotions:** %s\n", strings.Join(m.Promotions, ", "))
	}

	return sb.String()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
