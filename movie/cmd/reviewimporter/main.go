package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/abhishek622/moviereviews/internal/app"
	"github.com/abhishek622/moviereviews/internal/config"
	reviewgateway "github.com/abhishek622/moviereviews/movie/internal/gateway/review/http"
	"github.com/abhishek622/moviereviews/review/pkg/model"
)

const serviceName = "reviewimporter"

type reviewPoster interface {
	Post(ctx context.Context, movieID string, rating int, body string) (*model.Review, error)
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the configuration file")
	fileName := flag.String("file", "reviews.json", "JSON array of {imdbId, rating, body} entries")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	a, err := app.Setup(ctx, fs, *configPath, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	a.Logger.Info("Reading reviews", zap.String("file", *fileName))
	entries, err := readImports(fs, *fileName)
	if err == nil {
		var n int
		n, err = importReviews(ctx, reviewgateway.New(a.Client, a.Session), entries, a.Logger)
		fmt.Printf("Imported %d of %d reviews\n", n, len(entries))
	}
	a.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readImports(fs afero.Fs, fileName string) ([]model.Import, error) {
	f, err := fs.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []model.Import
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return entries, nil
}

// importReviews posts entries in order and stops at the first failure. It
// returns how many were posted.
func importReviews(ctx context.Context, poster reviewPoster, entries []model.Import, logger *zap.Logger) (int, error) {
	for i, e := range entries {
		created, err := poster.Post(ctx, e.IMDBID, e.Rating, e.Body)
		if err != nil {
			return i, fmt.Errorf("entry %d (%s): %w", i, e.IMDBID, err)
		}
		logger.Debug("Posted review", zap.String("movieId", e.IMDBID), zap.String("reviewId", string(created.ID)))
	}
	return len(entries), nil
}
