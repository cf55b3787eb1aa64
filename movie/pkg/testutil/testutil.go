package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/abhishek622/moviereviews/auth/pkg/session"
	catalogmodel "github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/internal/httputil"
	"github.com/abhishek622/moviereviews/movie/internal/controller/movie"
	cataloggateway "github.com/abhishek622/moviereviews/movie/internal/gateway/catalog/http"
	reviewgateway "github.com/abhishek622/moviereviews/movie/internal/gateway/review/http"
	"github.com/abhishek622/moviereviews/pkg/discovery/static"
	reviewmodel "github.com/abhishek622/moviereviews/review/pkg/model"
)

// ServiceName is the registry name the fake backend is registered under.
const ServiceName = "movies-api"

// Route names accepted by Backend.Calls.
const (
	RouteMovie    = "movie"
	RouteMovies   = "movies"
	RouteLatest   = "latest"
	RouteSearch   = "search"
	RouteReviews  = "reviews"
	RoutePost     = "post"
	RouteMine     = "mine"
	RouteLogin    = "login"
	RouteRegister = "register"
)

type storedReview struct {
	review reviewmodel.Review
	author string
}

// Backend is an in-memory movie reviews API to be used in tests.
type Backend struct {
	mu      sync.Mutex
	movies  map[string]catalogmodel.Movie
	order   []string
	reviews map[string][]storedReview
	users   map[string]string
	tokens  map[string]string
	nextID  int
	calls   map[string]int
	srv     *httptest.Server
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		movies:  map[string]catalogmodel.Movie{},
		reviews: map[string][]storedReview{},
		users:   map[string]string{},
		tokens:  map[string]string{},
		calls:   map[string]int{},
	}
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/login", b.count(RouteLogin, b.login)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/register", b.count(RouteRegister, b.register)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/movies", b.count(RouteMovies, b.listMovies)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/movies/latest", b.count(RouteLatest, b.latest)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/movies/search", b.count(RouteSearch, b.search)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/movies/{id}", b.count(RouteMovie, b.getMovie)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/reviews", b.count(RoutePost, b.postReview)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/reviews/me", b.count(RouteMine, b.mine)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/reviews/{id}", b.count(RouteReviews, b.listReviews)).Methods(http.MethodGet)

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the base URL of the backend.
func (b *Backend) URL() string {
	return b.srv.URL
}

// AddMovie stores a movie record.
func (b *Backend) AddMovie(m catalogmodel.Movie) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.movies[m.IMDBID]; !ok {
		b.order = append(b.order, m.IMDBID)
	}
	b.movies[m.IMDBID] = m
}

// AddUser registers an account.
func (b *Backend) AddUser(email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[email] = password
}

// Token issues a valid access token for email without going through login.
func (b *Backend) Token(email string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.issueToken(email)
}

// AddReview stores a review written by author.
func (b *Backend) AddReview(author string, r reviewmodel.Review) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.addReview(author, r)
}

// Calls returns how many requests a route has served.
func (b *Backend) Calls(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// NewTestClient creates a backend client pointed at b.
func NewTestClient(b *Backend) *httputil.Client {
	return httputil.New(static.NewRegistry(ServiceName, b.URL()), ServiceName)
}

// NewTestController creates a movie detail controller wired to b through the
// real HTTP gateways.
func NewTestController(b *Backend, s *session.Session, opts ...movie.Option) *movie.Controller {
	client := NewTestClient(b)
	return movie.New(cataloggateway.New(client), reviewgateway.New(client, s), s, opts...)
}

func (b *Backend) count(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[route]++
		b.mu.Unlock()
		h(w, r)
	}
}

func (b *Backend) issueToken(email string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": email}).SignedString([]byte("test-secret"))
	if err != nil {
		panic(err)
	}
	b.tokens[token] = email
	return token
}

// caller must hold mu.
func (b *Backend) addReview(author string, r reviewmodel.Review) reviewmodel.Review {
	b.nextID++
	if r.ID == "" {
		r.ID = reviewmodel.ID(strconv.Itoa(b.nextID))
	}
	if m, ok := b.movies[r.IMDBID]; ok {
		r.MovieTitle = m.Title
		r.MoviePoster = m.Poster
		total := float64(r.Rating)
		for _, s := range b.reviews[r.IMDBID] {
			total += float64(s.review.Rating)
		}
		m.RatingCount = len(b.reviews[r.IMDBID]) + 1
		avg := total / float64(m.RatingCount)
		m.AverageRating = &avg
		b.movies[r.IMDBID] = m
	}
	b.reviews[r.IMDBID] = append(b.reviews[r.IMDBID], storedReview{review: r, author: author})
	return r
}

func (b *Backend) user(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return "", false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	email, ok := b.tokens[token]
	return email, ok
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if pw, ok := b.users[req.Email]; !ok || pw != req.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"accessToken": b.issueToken(req.Email)})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.users[req.Email]; ok {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Email already registered"})
		return
	}
	b.users[req.Email] = req.Password
	writeJSON(w, http.StatusCreated, map[string]string{"email": req.Email})
}

func (b *Backend) listMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogmodel.Page{Content: b.matching("")})
}

func (b *Backend) latest(w http.ResponseWriter, r *http.Request) {
	all := b.matching("")
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	writeJSON(w, http.StatusOK, all)
}

func (b *Backend) search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogmodel.Page{Content: b.matching(r.URL.Query().Get("title"))})
}

func (b *Backend) matching(title string) []catalogmodel.Movie {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := []catalogmodel.Movie{}
	for _, id := range b.order {
		m := b.movies[id]
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(title)) {
			res = append(res, m)
		}
	}
	return res
}

func (b *Backend) getMovie(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	m, ok := b.movies[mux.Vars(r)["id"]]
	b.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (b *Backend) listReviews(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := []reviewmodel.Review{}
	for _, s := range b.reviews[mux.Vars(r)["id"]] {
		res = append(res, s.review)
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": res})
}

func (b *Backend) postReview(w http.ResponseWriter, r *http.Request) {
	email, ok := b.user(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}
	var req reviewmodel.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.movies[req.IMDBID]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Movie not found"})
		return
	}
	created := b.addReview(email, reviewmodel.Review{IMDBID: req.IMDBID, Rating: req.Rating, Body: req.Body})
	writeJSON(w, http.StatusCreated, created)
}

func (b *Backend) mine(w http.ResponseWriter, r *http.Request) {
	email, ok := b.user(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	res := []reviewmodel.Review{}
	for _, id := range b.order {
		for _, s := range b.reviews[id] {
			if s.author == email {
				res = append(res, s.review)
			}
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
