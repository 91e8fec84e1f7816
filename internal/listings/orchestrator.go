package listings

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"

	"autorent_portal/internal/filters"
	"autorent_portal/platform/logger"

	"golang.org/x/sync/singleflight"
)

// Fetcher is the slice of the collaborator client the loader needs.
type Fetcher interface {
	Search(ctx context.Context, query url.Values, token string) (*Page, error)
	MyCars(ctx context.Context, query url.Values, token string) (*Page, error)
}

// Result is the outcome of one load: the page to show, whether it is a
// leftover from an earlier successful load, and the empty-result advisory.
type Result struct {
	Page *Page

	// Stale is true when the fetch failed and Page carries the last page
	// that loaded successfully, so callers can keep it on screen.
	Stale bool

	// NoResults is true when the fetch succeeded, came back empty, and at
	// least one filter beyond free-text search is active. It distinguishes
	// "your filters matched nothing" from a genuinely empty marketplace.
	NoResults bool

	Err error
}

// Loader serializes listing fetches per viewer. Rapid filter changes from one
// viewer fire overlapping fetches; only that viewer's newest one may land.
// Identical concurrent fetches are collapsed into a single upstream call.
type Loader struct {
	fetcher Fetcher
	log     *logger.Logger
	group   singleflight.Group

	mu      sync.Mutex
	viewers map[string]*viewerSession
}

// viewerSession tracks one viewer's in-flight generation and last good page.
// Supersede and stale semantics never cross viewers: one host's fetches must
// not replace or leak into what another caller is shown.
type viewerSession struct {
	generation atomic.Uint64

	mu       sync.Mutex
	lastGood *Page
}

func (s *viewerSession) snapshotLastGood() *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGood
}

// NewLoader creates a loader over the given fetcher.
func NewLoader(fetcher Fetcher, log *logger.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		log:     log,
		viewers: make(map[string]*viewerSession),
	}
}

// Load fetches the page of public listings described by state for the given
// viewer. A load the same viewer starts afterwards supersedes it: the
// superseded result is discarded and reported as stale so the caller keeps
// whatever it is showing.
func (l *Loader) Load(ctx context.Context, viewer string, state filters.State, token string) Result {
	return l.run(ctx, viewer, state, token, l.fetcher.Search)
}

// LoadMyCars fetches the authenticated host's own listings.
func (l *Loader) LoadMyCars(ctx context.Context, viewer string, state filters.State, token string) Result {
	return l.run(ctx, viewer, state, token, l.fetcher.MyCars)
}

func (l *Loader) run(ctx context.Context, viewer string, state filters.State, token string, fetch func(context.Context, url.Values, string) (*Page, error)) Result {
	sess := l.session(viewer)
	gen := sess.generation.Add(1)
	query := filters.Query(state)

	value, err, _ := l.group.Do(token+"|"+query.Encode(), func() (interface{}, error) {
		return fetch(ctx, query, token)
	})

	if gen != sess.generation.Load() {
		// The same viewer started a newer load while this one was in flight.
		// Its result will land instead; hand back the current page unchanged.
		return Result{Page: sess.snapshotLastGood(), Stale: true}
	}

	if err != nil {
		return Result{Page: sess.snapshotLastGood(), Stale: true, Err: err}
	}

	page := value.(*Page)
	sess.mu.Lock()
	sess.lastGood = page
	sess.mu.Unlock()

	l.log.SearchPerformed(state.Search, filters.IsActive(state), len(page.Items), page.CurrentPage)

	return Result{
		Page:      page,
		NoResults: len(page.Items) == 0 && filters.IsActive(state),
	}
}

func (l *Loader) session(viewer string) *viewerSession {
	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.viewers[viewer]
	if !ok {
		sess = &viewerSession{}
		l.viewers[viewer] = sess
	}
	return sess
}
