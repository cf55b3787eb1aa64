package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abhishek622/moviereviews/pkg/discovery"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// Client executes requests against the backend REST API. The base URL is
// resolved through a service registry on every call.
type Client struct {
	registry    discovery.Registry
	serviceName string
	http        *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLimiter throttles outbound requests. A nil limiter disables throttling.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new backend client for the given service.
func New(registry discovery.Registry, serviceName string, opts ...Option) *Client {
	c := &Client{
		registry:    registry,
		serviceName: serviceName,
		http:        &http.Client{Timeout: defaultTimeout},
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Request describes a single backend call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is encoded as JSON when non-nil.
	Body any
	// Token is sent as a bearer credential when non-empty.
	Token string
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the response has a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode/100 == 2
}

// Err returns a *RequestFailedError for non-2xx responses and nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return &RequestFailedError{Status: r.StatusCode, Message: MessageFrom(r.Body, r.Status)}
}

// Do sends the request and reads the whole response body. Transport failures
// are returned as *NetworkError; HTTP status handling is left to the caller.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	base, err := c.baseURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", c.serviceName, err)
	}
	target := base + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	span, _ := opentracing.StartSpanFromContext(ctx, r.Method+" "+r.Path)
	defer span.Finish()
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPMethod.Set(span, r.Method)
	ext.HTTPUrl.Set(span, target)
	_ = span.Tracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Cause: err}
		}
	}

	c.logger.Debug("Calling backend", zap.String("method", r.Method), zap.String("url", target))
	resp, err := c.http.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Status:     StatusLine(resp.StatusCode, resp.Status),
		Body:       data,
	}, nil
}

// baseURL returns a random instance address from the service registry.
func (c *Client) baseURL(ctx context.Context) (string, error) {
	addrs, err := c.registry.ServiceAddresses(ctx, c.serviceName)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", discovery.ErrNotFound
	}
	addr := strings.TrimRight(addrs[rand.Intn(len(addrs))], "/")
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return addr, nil
}
