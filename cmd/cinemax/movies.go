package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cinemax_cli/pkg/config"
	"cinemax_cli/pkg/feed"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const fetchTimeout = 30 * time.Second

func newMoviesCmd(configPath *string) *cobra.Command {
	var query feed.Query

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Print the current listings as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return printMovies(cmd.Context(), cmd.OutOrStdout(), cfg, query)
		},
	}

	cmd.Flags().StringVar(&query.Genre, "genre", "", "Only movies of this genre")
	cmd.Flags().Float64Var(&query.MaxPrice, "max-price", 0, "Only movies with a general ticket up to this price")
	cmd.Flags().StringVar(&query.Showtime, "showtime", "", "Only movies screening at this time (hh:mm)")
	cmd.Flags().StringVar(&query.Title, "title", "", "Only movies whose title contains this text")
	return cmd
}

func printMovies(ctx context.Context, w io.Writer, cfg config.Config, query feed.Query) error {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	catalog, err := feed.NewClient(cfg.FeedURL).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("loading listings: %w", err)
	}

	movies := query.Apply(catalog.Movies)
	if catalog.Cinema != "" {
		fmt.Fprintf(w, "%s", catalog.Cinema)
		if catalog.Location != "" {
			fmt.Fprintf(w, " - %s", catalog.Location)
		}
		fmt.Fprintln(w)
	}
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies match.")
		return nil
	}
	writeMoviesTable(w, movies)
	return nil
}

func writeMoviesTable(w io.Writer, movies []feed.Movie) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Genre", "Rating", "Duration", "Class", "Showtimes", "General"})
	table.SetAutoWrapText(false)
	for _, m := range movies {
		table.Append([]string{
			strconv.Itoa(m.ID),
			m.Title,
			strings.Join(m.Genres, ", "),
			feed.FormatRating(m.Rating),
			fmt.Sprintf("%d min", m.Duration),
			m.Classification,
			strings.Join(m.Showtimes, " "),
			feed.FormatPrice(m.Prices.General),
		})
	}
	table.Render()
}
