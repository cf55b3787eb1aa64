package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/abhishek622/moviereviews/internal/app"
	"github.com/abhishek622/moviereviews/internal/config"
	"github.com/abhishek622/moviereviews/movie/internal/controller/movie"
	cataloggateway "github.com/abhishek622/moviereviews/movie/internal/gateway/catalog/http"
	reviewgateway "github.com/abhishek622/moviereviews/movie/internal/gateway/review/http"
	"github.com/abhishek622/moviereviews/movie/pkg/model"
)

const (
	serviceName = "movie"
	pageSize    = 20
)

type options struct {
	id     string
	rating int
	review string
	latest bool
	search string
	list   bool
	mine   bool
}

func (o options) submitting() bool {
	return o.rating != 0 || o.review != ""
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the configuration file")
	var o options
	flag.StringVar(&o.id, "id", "", "IMDb id of the movie to show")
	flag.IntVar(&o.rating, "rating", 0, "Rating (1-10) to submit for -id")
	flag.StringVar(&o.review, "review", "", "Review text to submit for -id")
	flag.BoolVar(&o.latest, "latest", false, "List the latest movies")
	flag.StringVar(&o.search, "search", "", "Search movies by title")
	flag.BoolVar(&o.list, "list", false, "List the first page of movies")
	flag.BoolVar(&o.mine, "mine", false, "List your own reviews")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Setup(ctx, afero.NewOsFs(), *configPath, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	err = run(ctx, a, o, os.Stdout)
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, o options, w io.Writer) error {
	catalog := cataloggateway.New(a.Client)
	reviews := reviewgateway.New(a.Client, a.Session)

	switch {
	case o.mine:
		mine, err := reviews.Mine(ctx)
		if err != nil {
			return err
		}
		renderMine(w, mine)
		return nil
	case o.list:
		movies, err := catalog.List(ctx, 0, pageSize)
		if err != nil {
			return err
		}
		renderMovies(w, movies)
		return nil
	case o.latest:
		movies, err := catalog.Latest(ctx)
		if err != nil {
			return err
		}
		renderMovies(w, movies)
		return nil
	case o.search != "":
		movies, err := catalog.Search(ctx, o.search, 0, pageSize)
		if err != nil {
			return err
		}
		renderMovies(w, movies)
		return nil
	case o.id == "":
		flag.Usage()
		return errors.New("one of -id, -list, -latest, -search or -mine is required")
	}

	ctrl := movie.New(catalog, reviews, a.Session,
		movie.WithLogger(a.Logger),
		movie.WithScope(a.MetricsScope()),
		movie.WithOnChange(logViewChange(a.Logger)),
	)
	ctrl.Navigate(ctx, o.id)
	ctrl.Wait()

	if o.submitting() {
		created, err := ctrl.SubmitReview(ctx, o.rating, o.review)
		if err != nil {
			renderDetail(w, ctrl.View())
			return fmt.Errorf("submit review: %w", err)
		}
		a.Logger.Info("Review submitted", zap.String("movieId", o.id), zap.String("reviewId", string(created.ID)))
		fmt.Fprintln(w, "Review submitted.")
	}
	renderDetail(w, ctrl.View())
	return nil
}

func logViewChange(logger *zap.Logger) func(model.DetailView) {
	return func(v model.DetailView) {
		logger.Debug("Detail view changed",
			zap.String("movieId", v.MovieID),
			zap.String("movie", string(v.Movie.Status)),
			zap.String("reviews", string(v.Reviews.Status)),
			zap.Int("reviewCount", v.ReviewCount),
		)
	}
}
