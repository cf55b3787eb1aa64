package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Rating bounds accepted by the backend.
const (
	MinRating = 1
	MaxRating = 10
)

var (
	// ErrMissingMovieID is returned when a review targets no movie.
	ErrMissingMovieID = errors.New("movie id is required")
	// ErrInvalidRating is returned for ratings outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
	// ErrEmptyBody is returned for blank review text.
	ErrEmptyBody = errors.New("review text is required")
)

// ID identifies a review. The backend serves it either as a number or a string.
type ID string

// UnmarshalJSON accepts both JSON numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Timestamp is a review creation time. The backend serves it either as an
// ISO-8601 string or as epoch milliseconds; numbers are kept as RFC 3339 UTC.
type Timestamp string

// UnmarshalJSON accepts strings, epoch millisecond numbers and null.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*ts = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*ts = Timestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	ms, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return err
		}
		ms = int64(f)
	}
	*ts = Timestamp(time.UnixMilli(ms).UTC().Format(time.RFC3339))
	return nil
}

// Review defines a single user review of a movie.
type Review struct {
	ID        ID        `json:"id"`
	IMDBID    string    `json:"imdbId"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`

	// Only present on the caller's own review listing.
	MovieTitle  string `json:"movieTitle,omitempty"`
	MoviePoster string `json:"moviePoster,omitempty"`
}

// Request is the payload of a review submission.
type Request struct {
	IMDBID string `json:"imdbId"`
	Rating int    `json:"rating"`
	Body   string `json:"reviewBody"`
}

// Validate checks the request locally before anything is sent.
func (r Request) Validate() error {
	if strings.TrimSpace(r.IMDBID) == "" {
		return ErrMissingMovieID
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrInvalidRating
	}
	if strings.TrimSpace(r.Body) == "" {
		return ErrEmptyBody
	}
	return nil
}

// Import is one entry of a bulk review import file.
type Import struct {
	IMDBID string `json:"imdbId"`
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}
