package model

import (
	catalogmodel "github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/pkg/trailer"
	reviewmodel "github.com/abhishek622/moviereviews/review/pkg/model"
)

// LoadStatus is the state of one independently loaded panel.
type LoadStatus string

const (
	StatusIdle    = LoadStatus("idle")
	StatusLoading = LoadStatus("loading")
	StatusLoaded  = LoadStatus("loaded")
	StatusFailed  = LoadStatus("failed")
)

// Resolved reports whether the load has finished, successfully or not.
func (s LoadStatus) Resolved() bool {
	return s == StatusLoaded || s == StatusFailed
}

// MoviePanel holds the movie record of the detail view.
type MoviePanel struct {
	Status  LoadStatus             `json:"status"`
	Movie   *catalogmodel.Movie    `json:"movie,omitempty"`
	Trailer trailer.Classification `json:"trailer"`
	Error   string                 `json:"error,omitempty"`
}

// ReviewsPanel holds the review list of the detail view.
type ReviewsPanel struct {
	Status  LoadStatus           `json:"status"`
	Reviews []reviewmodel.Review `json:"reviews"`
	Error   string               `json:"error,omitempty"`
}

// DetailView is a consistent snapshot of the movie detail view.
type DetailView struct {
	MovieID string       `json:"movieId"`
	Movie   MoviePanel   `json:"movie"`
	Reviews ReviewsPanel `json:"reviews"`
	// ReviewCount is always the length of the loaded review list.
	ReviewCount   int  `json:"reviewCount"`
	Authenticated bool `json:"authenticated"`
}

// Settled reports whether both panels have resolved.
func (v DetailView) Settled() bool {
	return v.Movie.Status.Resolved() && v.Reviews.Status.Resolved()
}
