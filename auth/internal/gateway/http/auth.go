package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/abhishek622/moviereviews/internal/httputil"
)

const tracerID = "auth-gateway-http"

var (
	// ErrInvalidCredentials is returned when email or password is blank.
	ErrInvalidCredentials = errors.New("email and password are required")
	// ErrMissingToken is returned when a login response carries no token.
	ErrMissingToken = errors.New("login succeeded but accessToken not found in response")
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Gateway defines an HTTP gateway for the backend auth endpoints.
type Gateway struct {
	client *httputil.Client
}

// New creates a new HTTP gateway for the auth endpoints.
func New(client *httputil.Client) *Gateway {
	return &Gateway{client}
}

// Login exchanges email and password for a bearer token.
func (g *Gateway) Login(ctx context.Context, email string, password string) (string, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Login")
	defer span.End()

	body, err := g.post(ctx, "/api/v1/auth/login", email, password)
	if err != nil {
		return "", err
	}
	var v loginResponse
	if err := json.Unmarshal(body, &v); err != nil || strings.TrimSpace(v.AccessToken) == "" {
		return "", ErrMissingToken
	}
	return v.AccessToken, nil
}

// Register creates a new account. The response body is ignored.
func (g *Gateway) Register(ctx context.Context, email string, password string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Gateway/Register")
	defer span.End()

	_, err := g.post(ctx, "/api/v1/auth/register", email, password)
	return err
}

func (g *Gateway) post(ctx context.Context, path string, email string, password string) ([]byte, error) {
	if !validCredentials(email, password) {
		return nil, ErrInvalidCredentials
	}
	resp, err := g.client.Do(ctx, httputil.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   credentials{Email: strings.TrimSpace(email), Password: password},
	})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func validCredentials(email string, password string) bool {
	return strings.TrimSpace(email) != "" && password != ""
}
