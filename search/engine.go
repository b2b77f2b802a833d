// Package search is the runtime side of the documentation search: it lazily
// loads the serialized index artifact over HTTP, builds an in-memory
// full-text index, and executes locale-aware ranked queries with snippet and
// highlight shaping for display. Navigation after a selection is handed off
// to an external callback.
package search

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/docstack/docsearch/internal/indexing"
)

// maxResults caps a query at the top hits by relevance.
const maxResults = 10

// State is the engine lifecycle state.
type State int

const (
	// StateIdle: index not yet loaded, no load in flight.
	StateIdle State = iota
	// StateLoading: index fetch and build in flight.
	StateLoading
	// StateReady: index loaded; the engine accepts queries. Sticky for the
	// rest of the session.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// Result is one search hit plus its display shaping inputs.
type Result struct {
	indexing.SearchDocument

	// Score is the relevance score assigned by the index.
	Score float64

	// ForeignLocale marks a cross-locale fallback hit whose locale differs
	// from the engine's current locale. Such results get a locale badge.
	ForeignLocale bool
}

// IsSection reports whether the result points at a heading section rather
// than a whole page.
func (r Result) IsSection() bool {
	return strings.Contains(r.Path, "#")
}

// Breadcrumb builds the display trail [groupTitle?, pageTitle, title?]. The
// trailing title appears only for section hits whose title differs from the
// page title.
func (r Result) Breadcrumb() string {
	var parts []string
	if r.GroupTitle != "" {
		parts = append(parts, r.GroupTitle)
	}
	parts = append(parts, r.PageTitle)
	if r.IsSection() && r.Title != r.PageTitle {
		parts = append(parts, r.Title)
	}
	return strings.Join(parts, " > ")
}

// Config wires an Engine to its collaborators. All dependencies are
// explicit; nothing is read from ambient globals.
type Config struct {
	// IndexURL is the public URL of the serialized index artifact.
	IndexURL string

	// Locale is the initial locale queries are scoped to.
	Locale string

	// Navigate receives the locale-prefixed path when a result is selected.
	Navigate func(path string)

	// Client overrides http.DefaultClient for the artifact fetch.
	Client *http.Client

	// Loader overrides the fetch-and-build step, mainly for tests.
	Loader func(ctx context.Context) (Index, error)
}

// Engine executes documentation searches for one browsing session. The
// loaded index is immutable and shared by concurrent queries; the small
// mutable state bundle (panel flag, query, results, loading flag, index
// handle) is owned exclusively by the engine and guarded by its mutex.
type Engine struct {
	cfg Config

	mu         sync.Mutex
	index      Index
	loading    bool
	open       bool
	locale     string
	query      string
	results    []Result
	seq        uint64 // last issued query
	resultsSeq uint64 // query whose results are displayed
}

// NewEngine returns an Idle engine; no network activity happens until the
// first Open.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, locale: cfg.Locale}
}

// Open marks the panel open and, when the index is neither loaded nor
// loading, fetches and builds it. Idempotent: the artifact is fetched once
// per session unless a previous attempt failed, in which case every open
// retries. A failed load is logged and leaves the engine retryable; the
// loading flag clears on every exit path.
func (e *Engine) Open(ctx context.Context) {
	e.mu.Lock()
	e.open = true
	if e.index != nil || e.loading {
		e.mu.Unlock()
		return
	}
	e.loading = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.loading = false
		e.mu.Unlock()
	}()

	index, err := e.load(ctx)
	if err != nil {
		log.Printf("Warning: failed to load search index: %v", err)
		return
	}

	e.mu.Lock()
	e.index = index
	e.mu.Unlock()

	if count, err := index.DocCount(); err == nil {
		log.Printf("✓ Search index loaded (%d documents)", count)
	}
}

func (e *Engine) load(ctx context.Context) (Index, error) {
	if e.cfg.Loader != nil {
		return e.cfg.Loader(ctx)
	}
	docs, err := fetchArtifact(ctx, e.client(), e.cfg.IndexURL)
	if err != nil {
		return nil, err
	}
	return BuildIndex(docs)
}

func (e *Engine) client() *http.Client {
	if e.cfg.Client != nil {
		return e.cfg.Client
	}
	return http.DefaultClient
}

// State reports the lifecycle state. Ready is sticky once the index handle
// is set, even while the panel is closed.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.index != nil:
		return StateReady
	case e.loading:
		return StateLoading
	default:
		return StateIdle
	}
}

// SetLocale changes the locale queries are scoped to.
func (e *Engine) SetLocale(locale string) {
	e.mu.Lock()
	e.locale = locale
	e.mu.Unlock()
}

// Query returns the current query text.
func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// Results returns a copy of the currently displayed result list.
func (e *Engine) Results() []Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Result(nil), e.results...)
}

// SetQuery updates the query and executes a search against the loaded
// index. An empty or whitespace-only query clears the results without
// searching. Results apply in query-issuance order: a slower resolution of
// an earlier query never overwrites a faster resolution of a later one.
func (e *Engine) SetQuery(ctx context.Context, text string) {
	e.mu.Lock()
	e.query = text
	e.seq++
	seq := e.seq
	index := e.index
	locale := e.locale

	if strings.TrimSpace(text) == "" {
		e.results = nil
		e.resultsSeq = seq
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	if index == nil {
		return
	}

	results, err := searchIndex(index, text, locale)
	if err != nil {
		log.Printf("Warning: search for %q failed: %v", text, err)
		return
	}

	e.mu.Lock()
	if seq > e.resultsSeq {
		e.results = results
		e.resultsSeq = seq
	}
	e.mu.Unlock()
}

// Select hands the result's locale-prefixed path to the navigation
// callback and closes the panel. Works uniformly for page and section hits.
func (e *Engine) Select(result Result) {
	e.mu.Lock()
	locale := e.locale
	e.mu.Unlock()

	if e.cfg.Navigate != nil {
		e.cfg.Navigate("/" + locale + result.Path)
	}
	e.ClosePanel()
}

// ClosePanel resets the query and result list. The loaded index handle is
// kept for reuse on the next open. In-flight searches are invalidated so a
// late completion cannot repopulate the cleared list.
func (e *Engine) ClosePanel() {
	e.mu.Lock()
	e.open = false
	e.query = ""
	e.results = nil
	e.resultsSeq = e.seq
	e.mu.Unlock()
}

// IsOpen reports whether the panel is currently open.
func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open
}

// Close releases the loaded index at the end of a session.
func (e *Engine) Close() error {
	e.mu.Lock()
	index := e.index
	e.index = nil
	e.mu.Unlock()

	if index == nil {
		return nil
	}
	return index.Close()
}

// IsSearchShortcut reports whether a key event is the global search
// accelerator: Ctrl+K or Cmd+K, regardless of input focus.
func IsSearchShortcut(key string, ctrl, meta bool) bool {
	return (ctrl || meta) && strings.EqualFold(key, "k")
}

// searchIndex runs a locale-scoped query over title, pageTitle and content,
// falling back to an unscoped query across all locales when the scoped one
// has no hits. Ranking order is the index's relevance order.
func searchIndex(index Index, term, locale string) ([]Result, error) {
	res, err := index.Search(searchRequest(term, locale))
	if err != nil {
		return nil, err
	}

	if len(res.Hits) == 0 && locale != "" {
		res, err = index.Search(searchRequest(term, ""))
		if err != nil {
			return nil, err
		}
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		doc := docFromHit(hit)
		results = append(results, Result{
			SearchDocument: doc,
			Score:          hit.Score,
			ForeignLocale:  locale != "" && doc.Locale != locale,
		})
	}
	return results, nil
}

// searchRequest builds the per-field match query, conjoined with an exact
// locale filter when locale is non-empty.
func searchRequest(term, locale string) *bleve.SearchRequest {
	fields := []string{"title", "pageTitle", "content"}
	matches := make([]query.Query, 0, len(fields))
	for _, field := range fields {
		mq := bleve.NewMatchQuery(term)
		mq.SetField(field)
		matches = append(matches, mq)
	}

	var q query.Query = bleve.NewDisjunctionQuery(matches...)
	if locale != "" {
		lq := bleve.NewTermQuery(locale)
		lq.SetField("locale")
		q = bleve.NewConjunctionQuery(q, lq)
	}

	req := bleve.NewSearchRequest(q)
	req.Size = maxResults
	req.Fields = []string{"*"}
	return req
}

// fetchArtifact downloads and decodes the serialized index. Any non-2xx
// status and any decode failure are equivalent: the load failed.
func fetchArtifact(ctx context.Context, client *http.Client, url string) ([]indexing.SearchDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build index request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search index fetch returned status %d", resp.StatusCode)
	}

	return indexing.DecodeArtifact(resp.Body)
}
