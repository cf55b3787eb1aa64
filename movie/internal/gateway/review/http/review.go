package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/abhishek622/moviereviews/internal/httputil"
	"github.com/abhishek622/moviereviews/movie/internal/gateway"
	"github.com/abhishek622/moviereviews/review/pkg/model"
)

const tracerID = "review-gateway-http"

type credentialGate interface {
	Credential() (string, bool)
}

// Gateway defines an HTTP gateway for the review endpoints.
type Gateway struct {
	client  *httputil.Client
	session credentialGate
}

// New creates a new HTTP gateway for the review endpoints. The session is
// read at call time by the credential-gated operations.
func New(client *httputil.Client, session credentialGate) *Gateway {
	return &Gateway{client, session}
}

// List returns the reviews of a movie. It needs no credential.
//
// A failed status is returned as an error. Otherwise the body may be a bare
// array or an object wrapping the array in "content" or "reviews"; every other
// body, including one that is not JSON, yields an empty list.
func (g *Gateway) List(ctx context.Context, movieID string) ([]model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/List")
	defer span.End()

	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return nil, model.ErrMissingMovieID
	}
	resp, err := g.client.Do(ctx, httputil.Request{
		Method: http.MethodGet,
		Path:   "/api/v1/reviews/" + url.PathEscape(movieID),
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := resp.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	p := gateway.DecodeList[model.Review](resp.Body, gateway.ShapeContent, gateway.ShapeReviews)
	span.SetAttributes(attribute.Int("skipped_items", p.Skipped))
	return normalizeReviews(p), nil
}

func normalizeReviews(p gateway.Payload[model.Review]) []model.Review {
	switch p.Shape {
	case gateway.ShapeArray, gateway.ShapeContent, gateway.ShapeReviews:
		return p.Items
	default:
		return []model.Review{}
	}
}

// Post submits a review on behalf of the logged in user. The credential and
// the request are checked before anything is sent. The created review is
// returned as served; callers re-fetch the list to observe its effect.
func (g *Gateway) Post(ctx context.Context, movieID string, rating int, body string) (*model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Post")
	defer span.End()

	token, ok := g.session.Credential()
	if !ok {
		return nil, httputil.ErrUnauthenticated
	}
	req := model.Request{IMDBID: strings.TrimSpace(movieID), Rating: rating, Body: body}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := g.client.Do(ctx, httputil.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/reviews",
		Body:   req,
		Token:  token,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := resp.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	var v model.Review
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return &model.Review{}, nil
	}
	return &v, nil
}

// Mine returns the logged in user's reviews, each carrying the reviewed
// movie's title and poster. A body that is not an array yields an empty list.
func (g *Gateway) Mine(ctx context.Context) ([]model.Review, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Mine")
	defer span.End()

	token, ok := g.session.Credential()
	if !ok {
		return nil, httputil.ErrUnauthenticated
	}
	resp, err := g.client.Do(ctx, httputil.Request{
		Method: http.MethodGet,
		Path:   "/api/v1/reviews/me",
		Token:  token,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := resp.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	p := gateway.DecodeList[model.Review](resp.Body)
	span.SetAttributes(attribute.Int("skipped_items", p.Skipped))
	if p.Shape != gateway.ShapeArray {
		return []model.Review{}, nil
	}
	return p.Items, nil
}
