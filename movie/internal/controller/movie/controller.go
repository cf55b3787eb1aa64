package movie

import (
	"context"
	"errors"
	"sync"

	"github.com/sourcegraph/conc"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	catalogmodel "github.com/abhishek622/moviereviews/catalog/pkg/model"
	"github.com/abhishek622/moviereviews/movie/pkg/model"
	"github.com/abhishek622/moviereviews/pkg/trailer"
	reviewmodel "github.com/abhishek622/moviereviews/review/pkg/model"
)

// ErrNoMovie is returned when a review is submitted before any movie is shown.
var ErrNoMovie = errors.New("no movie selected")

//go:generate mockgen -source=controller.go -destination=mocks_test.go -package=movie

const (
	resourceMovie   = "movie"
	resourceReviews = "reviews"
)

type catalogGateway interface {
	Get(ctx context.Context, id string) (*catalogmodel.Movie, error)
}

type reviewGateway interface {
	List(ctx context.Context, movieID string) ([]reviewmodel.Review, error)
	Post(ctx context.Context, movieID string, rating int, body string) (*reviewmodel.Review, error)
}

type credentialGate interface {
	IsAuthenticated() bool
}

// Controller orchestrates the movie detail view. It loads the movie record
// and its reviews concurrently, drops results that arrive after the user
// navigated elsewhere, and refreshes both after a review is submitted.
type Controller struct {
	catalog  catalogGateway
	reviews  reviewGateway
	session  credentialGate
	logger   *zap.Logger
	scope    tally.Scope
	onChange func(model.DetailView)

	mu         sync.Mutex
	generation uint64
	movieID    string
	movie      model.MoviePanel
	list       model.ReviewsPanel
	// Bumped whenever a fetch of the resource is issued. Only the result of
	// the latest fetch is applied.
	movieSeq   uint64
	reviewsSeq uint64
	commits    uint64

	// notified is the last commit handed to the listener.
	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	notified   uint64

	submitMu sync.Mutex
	inflight *conc.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithScope sets the metrics scope.
func WithScope(s tally.Scope) Option {
	return func(c *Controller) { c.scope = s }
}

// WithOnChange registers a listener called with a snapshot after every state
// change, in order. No controller lock is held while it runs, so it may call
// View. It must not call Navigate, Reload or SubmitReview.
func WithOnChange(fn func(model.DetailView)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New creates a movie detail controller.
func New(catalog catalogGateway, reviews reviewGateway, session credentialGate, opts ...Option) *Controller {
	c := &Controller{
		catalog:  catalog,
		reviews:  reviews,
		session:  session,
		logger:   zap.NewNop(),
		scope:    tally.NoopScope,
		movie:    model.MoviePanel{Status: model.StatusIdle, Trailer: trailer.Classify(nil)},
		list:     model.ReviewsPanel{Status: model.StatusIdle},
		inflight: conc.NewWaitGroup(),
	}
	c.notifyCond = sync.NewCond(&c.notifyMu)
	for _, o := range opts {
		o(c)
	}
	return c
}

// Navigate shows the movie with the given id. Both panels switch to loading
// and the movie and its reviews are fetched concurrently. Results of fetches
// issued for a previous movie are ignored when they arrive. Navigate does not
// wait for the fetches; use Wait or the change listener.
func (c *Controller) Navigate(ctx context.Context, movieID string) {
	var gen, movieSeq, reviewsSeq uint64
	c.commit(func() bool {
		c.generation++
		gen = c.generation
		movieSeq, reviewsSeq = c.issue()
		c.movieID = movieID
		c.movie = model.MoviePanel{Status: model.StatusLoading, Trailer: trailer.Classify(nil)}
		c.list = model.ReviewsPanel{Status: model.StatusLoading}
		return true
	})
	c.scope.Counter("navigations").Inc(1)
	c.logger.Debug("Loading movie details", zap.String("movieId", movieID), zap.Uint64("generation", gen))

	c.inflight.Go(func() {
		m, err := c.fetchMovie(ctx, movieID)
		c.applyMovie(movieSeq, m, err, false)
	})
	c.inflight.Go(func() {
		list, err := c.fetchReviews(ctx, movieID)
		c.applyReviews(reviewsSeq, list, err)
	})
}

// Reload fetches the current movie again.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	id := c.movieID
	started := c.generation > 0
	c.mu.Unlock()
	if !started {
		return ErrNoMovie
	}
	c.Navigate(ctx, id)
	return nil
}

// Wait blocks until every fetch issued so far has resolved.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// View returns a snapshot of the detail view.
func (c *Controller) View() model.DetailView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// SubmitReview posts a review for the current movie and, once the post has
// succeeded, refreshes the reviews and the movie record so the view reflects
// the server's state. Post failures are returned unchanged and leave the view
// untouched. Submissions are serialised. Fetches still in flight from an
// earlier load are superseded by the refresh.
func (c *Controller) SubmitReview(ctx context.Context, rating int, body string) (*reviewmodel.Review, error) {
	c.submitMu.Lock()
	defer c.submitMu.Unlock()

	c.mu.Lock()
	gen, id, started := c.generation, c.movieID, c.generation > 0
	c.mu.Unlock()
	if !started {
		return nil, ErrNoMovie
	}

	created, err := c.reviews.Post(ctx, id, rating, body)
	if err != nil {
		c.scope.Counter("submit_failures").Inc(1)
		c.logger.Warn("Failed to post review", zap.String("movieId", id), zap.Error(err))
		return nil, err
	}
	c.scope.Counter("reviews_submitted").Inc(1)

	var movieSeq, reviewsSeq uint64
	refresh := c.commit(func() bool {
		if gen != c.generation {
			return false
		}
		movieSeq, reviewsSeq = c.issue()
		c.list = model.ReviewsPanel{Status: model.StatusLoading}
		return true
	})
	if !refresh {
		c.logger.Debug("Skipping refresh, movie changed during submit", zap.String("movieId", id))
		return created, nil
	}

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		list, err := c.fetchReviews(ctx, id)
		c.applyReviews(reviewsSeq, list, err)
	})
	wg.Go(func() {
		m, err := c.fetchMovie(ctx, id)
		c.applyMovie(movieSeq, m, err, true)
	})
	wg.Wait()
	return created, nil
}

// issue marks a new fetch of both resources and returns their sequence
// numbers. Must be called with mu held.
func (c *Controller) issue() (movieSeq, reviewsSeq uint64) {
	c.movieSeq++
	c.reviewsSeq++
	return c.movieSeq, c.reviewsSeq
}

func (c *Controller) fetchMovie(ctx context.Context, id string) (*catalogmodel.Movie, error) {
	scope := c.scope.Tagged(map[string]string{"resource": resourceMovie})
	scope.Counter("fetches").Inc(1)
	sw := scope.Timer("fetch_latency").Start()
	defer sw.Stop()

	m, err := c.catalog.Get(ctx, id)
	if err != nil {
		scope.Counter("fetch_failures").Inc(1)
		c.logger.Warn("Failed to load movie", zap.String("movieId", id), zap.Error(err))
		return nil, err
	}
	if m == nil {
		m = &catalogmodel.Movie{}
	}
	return m, nil
}

func (c *Controller) fetchReviews(ctx context.Context, id string) ([]reviewmodel.Review, error) {
	scope := c.scope.Tagged(map[string]string{"resource": resourceReviews})
	scope.Counter("fetches").Inc(1)
	sw := scope.Timer("fetch_latency").Start()
	defer sw.Stop()

	list, err := c.reviews.List(ctx, id)
	if err != nil {
		scope.Counter("fetch_failures").Inc(1)
		c.logger.Warn("Failed to load reviews", zap.String("movieId", id), zap.Error(err))
		return nil, err
	}
	if list == nil {
		list = []reviewmodel.Review{}
	}
	return list, nil
}

// applyMovie stores the result of movie fetch seq. With keepLoaded a failure
// leaves an already loaded record in place, as after a submission.
func (c *Controller) applyMovie(seq uint64, m *catalogmodel.Movie, err error, keepLoaded bool) {
	stale := false
	c.commit(func() bool {
		if seq != c.movieSeq {
			stale = true
			return false
		}
		if err != nil {
			if keepLoaded && c.movie.Status == model.StatusLoaded {
				return false
			}
			c.movie = model.MoviePanel{Status: model.StatusFailed, Trailer: trailer.Classify(nil), Error: errorText(err)}
			return true
		}
		c.movie = model.MoviePanel{Status: model.StatusLoaded, Movie: m, Trailer: trailer.Classify(m.TrailerLink)}
		return true
	})
	if stale {
		c.dropStale(resourceMovie, seq)
	}
}

func (c *Controller) applyReviews(seq uint64, list []reviewmodel.Review, err error) {
	applied := c.commit(func() bool {
		if seq != c.reviewsSeq {
			return false
		}
		if err != nil {
			c.list = model.ReviewsPanel{Status: model.StatusFailed, Error: errorText(err)}
			return true
		}
		c.list = model.ReviewsPanel{Status: model.StatusLoaded, Reviews: list}
		return true
	})
	if !applied {
		c.dropStale(resourceReviews, seq)
	}
}

func (c *Controller) dropStale(resource string, seq uint64) {
	c.scope.Tagged(map[string]string{"resource": resource}).Counter("stale_responses").Inc(1)
	c.logger.Debug("Dropping stale response", zap.String("resource", resource), zap.Uint64("seq", seq))
}

// commit runs apply under the state lock. When apply reports a change the
// new snapshot is handed to the listener after those of all earlier changes
// and before those of later ones. The listener runs with no lock held.
func (c *Controller) commit(apply func() bool) bool {
	c.mu.Lock()
	if !apply() {
		c.mu.Unlock()
		return false
	}
	c.commits++
	ticket := c.commits
	view := c.snapshot()
	c.mu.Unlock()

	c.notifyMu.Lock()
	for c.notified+1 != ticket {
		c.notifyCond.Wait()
	}
	c.notifyMu.Unlock()
	defer c.release(ticket)

	if c.onChange != nil {
		c.onChange(view)
	}
	return true
}

func (c *Controller) release(ticket uint64) {
	c.notifyMu.Lock()
	c.notified = ticket
	c.notifyMu.Unlock()
	c.notifyCond.Broadcast()
}

// snapshot must be called with mu held.
func (c *Controller) snapshot() model.DetailView {
	v := model.DetailView{
		MovieID: c.movieID,
		Movie:   c.movie,
		Reviews: c.list,
	}
	v.Movie.Movie = c.movie.Movie.Clone()
	if c.list.Reviews != nil {
		v.Reviews.Reviews = append([]reviewmodel.Review(nil), c.list.Reviews...)
	}
	v.ReviewCount = len(v.Reviews.Reviews)
	if c.session != nil {
		v.Authenticated = c.session.IsAuthenticated()
	}
	return v
}

func errorText(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "something went wrong"
}
