package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/internal/httputil"
	"github.com/abhishek622/moviereviews/movie/internal/gateway"
	reviewmodel "github.com/abhishek622/moviereviews/review/pkg/model"
)

const tracerID = "catalog-gateway-http"

// Gateway defines an HTTP gateway for the movie catalogue.
type Gateway struct {
	client *httputil.Client
}

// New creates a new HTTP gateway for the movie catalogue.
func New(client *httputil.Client) *Gateway {
	return &Gateway{client}
}

// Get gets a movie by its catalogue id. A body that is not a movie object
// yields an empty record rather than an error.
func (g *Gateway) Get(ctx context.Context, id string) (*model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Get")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, reviewmodel.ErrMissingMovieID
	}
	resp, err := g.client.Do(ctx, httputil.Request{
		Method: http.MethodGet,
		Path:   "/api/v1/movies/" + url.PathEscape(id),
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := resp.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	var v model.Movie
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return &model.Movie{}, nil
	}
	return &v, nil
}

// List returns one page of the catalogue.
func (g *Gateway) List(ctx context.Context, page int, size int) ([]model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/List")
	defer span.End()

	return g.list(ctx, "/api/v1/movies", pageQuery(page, size))
}

// Latest returns the most recently added movies.
func (g *Gateway) Latest(ctx context.Context) ([]model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Latest")
	defer span.End()

	return g.list(ctx, "/api/v1/movies/latest", nil)
}

// Search returns one page of movies whose title matches title. A blank title
// matches nothing and sends no request.
func (g *Gateway) Search(ctx context.Context, title string, page int, size int) ([]model.Movie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Search")
	defer span.End()

	title = strings.TrimSpace(title)
	if title == "" {
		return []model.Movie{}, nil
	}
	q := pageQuery(page, size)
	q.Set("title", title)
	return g.list(ctx, "/api/v1/movies/search", q)
}

func (g *Gateway) list(ctx context.Context, path string, query url.Values) ([]model.Movie, error) {
	resp, err := g.client.Do(ctx, httputil.Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	p := gateway.DecodeList[model.Movie](resp.Body, gateway.ShapeContent)
	switch p.Shape {
	case gateway.ShapeArray, gateway.ShapeContent:
		return p.Items, nil
	default:
		return []model.Movie{}, nil
	}
}

func pageQuery(page int, size int) url.Values {
	return url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
}
