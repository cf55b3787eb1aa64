package main

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authtestutil "github.com/abhishek622/moviereviews/auth/pkg/testutil"
	catalogmodel "github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/internal/httputil"
	reviewgateway "github.com/abhishek622/moviereviews/movie/internal/gateway/review/http"
	"github.com/abhishek622/moviereviews/movie/pkg/testutil"
	"github.com/abhishek622/moviereviews/review/pkg/model"
)

func TestReadImports(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "reviews.json", []byte(`[
		{"imdbId": "tt0113277", "rating": 8, "body": "Tense."},
		{"imdbId": "tt0083658", "rating": 10, "body": "Tears in rain."}
	]`), 0o644))

	entries, err := readImports(fs, "reviews.json")
	require.NoError(t, err)
	assert.Equal(t, []model.Import{
		{IMDBID: "tt0113277", Rating: 8, Body: "Tense."},
		{IMDBID: "tt0083658", Rating: 10, Body: "Tears in rain."},
	}, entries)

	require.NoError(t, afero.WriteFile(fs, "broken.json", []byte(`{"imdbId":`), 0o644))
	_, err = readImports(fs, "broken.json")
	assert.Error(t, err)

	_, err = readImports(fs, "missing.json")
	assert.Error(t, err)
}

func TestImportReviewsStopsAtFirstFailure(t *testing.T) {
	b := testutil.NewBackend(t)
	b.AddMovie(catalogmodel.Movie{IMDBID: "tt0113277", Title: "Heat"})
	b.AddMovie(catalogmodel.Movie{IMDBID: "tt0083658", Title: "Blade Runner"})
	gw := reviewgateway.New(testutil.NewTestClient(b), authtestutil.NewTestSession(b.Token("me@example.com")))

	entries := []model.Import{
		{IMDBID: "tt0113277", Rating: 8, Body: "Tense."},
		{IMDBID: "tt0083658", Rating: 11, Body: "Too good."},
		{IMDBID: "tt0083658", Rating: 10, Body: "Tears in rain."},
	}
	n, err := importReviews(context.Background(), gw, entries, zap.NewNop())
	assert.ErrorIs(t, err, model.ErrInvalidRating)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, b.Calls(testutil.RoutePost))
}

func TestImportReviewsRequiresLogin(t *testing.T) {
	b := testutil.NewBackend(t)
	gw := reviewgateway.New(testutil.NewTestClient(b), authtestutil.NewTestSession(""))

	n, err := importReviews(context.Background(), gw, []model.Import{{IMDBID: "tt0113277", Rating: 8, Body: "Tense."}}, zap.NewNop())
	assert.ErrorIs(t, err, httputil.ErrUnauthenticated)
	assert.Zero(t, n)
	assert.Zero(t, b.Calls(testutil.RoutePost))
}
