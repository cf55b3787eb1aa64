package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	catalogmodel "github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/movie/pkg/model"
	"github.com/abhishek622/moviereviews/pkg/trailer"
	reviewmodel "github.com/abhishek622/moviereviews/review/pkg/model"
)

const placeholder = "—"

func renderDetail(w io.Writer, v model.DetailView) {
	switch v.Movie.Status {
	case model.StatusIdle, model.StatusLoading:
		fmt.Fprintln(w, "Loading movie...")
	case model.StatusFailed:
		fmt.Fprintf(w, "Error: %s\n", v.Movie.Error)
	default:
		renderMovie(w, v)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reviews")
	switch v.Reviews.Status {
	case model.StatusIdle, model.StatusLoading:
		fmt.Fprintln(w, "  Loading reviews...")
	case model.StatusFailed:
		fmt.Fprintf(w, "  %s\n", v.Reviews.Error)
	default:
		if len(v.Reviews.Reviews) == 0 {
			fmt.Fprintln(w, "  No reviews yet. Be the first one.")
		}
		for _, r := range v.Reviews.Reviews {
			fmt.Fprintf(w, "  #%s ★ %d  %s\n", r.ID, r.Rating, r.Body)
		}
	}
}

func renderMovie(w io.Writer, v model.DetailView) {
	m := v.Movie.Movie
	if m.IsZero() {
		fmt.Fprintln(w, "Movie not found.")
		return
	}
	fmt.Fprintln(w, m.Title)
	fmt.Fprintf(w, "★ %s (%d) • %s\n", formatRating(m.AverageRating), v.ReviewCount, formatDate(m.ReleaseDate))
	fmt.Fprintf(w, "Director: %s\n", orPlaceholder(m.Director))
	fmt.Fprintf(w, "Cast: %s\n", joinOrPlaceholder(m.Cast, ", "))
	fmt.Fprintf(w, "Genres: %s\n", joinOrPlaceholder(m.Genres, " • "))

	t := v.Movie.Trailer
	switch t.Strategy {
	case trailer.StrategyNone, "":
		fmt.Fprintln(w, "Trailer: No trailer available.")
	case trailer.StrategyExternalLink:
		fmt.Fprintf(w, "Trailer: %s (open in browser)\n", t.Source)
	default:
		fmt.Fprintf(w, "Trailer: %s\n", t.Source)
	}
	if len(m.Backdrops) > 0 {
		fmt.Fprintf(w, "Backdrops: %d\n", len(m.Backdrops))
		for _, b := range m.Backdrops {
			fmt.Fprintf(w, "  %s\n", b)
		}
	}
}

func renderMovies(w io.Writer, movies []catalogmodel.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}
	for _, m := range movies {
		fmt.Fprintf(w, "%-12s %s  ★ %s • %s\n", m.IMDBID, m.Title, formatRating(m.AverageRating), orPlaceholder(m.ReleaseDate))
	}
}

func renderMine(w io.Writer, reviews []reviewmodel.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(w, "You haven't reviewed anything yet.")
		return
	}
	for _, r := range reviews {
		title := r.MovieTitle
		if title == "" {
			title = r.IMDBID
		}
		fmt.Fprintf(w, "%s (%s) ★ %d", title, r.IMDBID, r.Rating)
		if r.CreatedAt != "" {
			fmt.Fprintf(w, " • %s", formatDate(string(r.CreatedAt)))
		}
		fmt.Fprintf(w, "\n  %s\n", r.Body)
	}
}

func formatRating(r *float64) string {
	if r == nil {
		return placeholder
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

func formatDate(s string) string {
	if s == "" {
		return placeholder
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 02, 2006")
		}
	}
	return s
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func joinOrPlaceholder(items []string, sep string) string {
	if len(items) == 0 {
		return placeholder
	}
	return strings.Join(items, sep)
}
