package engine

import (
	"log/slog"
	"runtime"
	"sleuth/internal/cache"
	"sleuth/internal/corpus"
	"sleuth/internal/facts"
	"sleuth/internal/rule"
	"sleuth/internal/score"
	"sync/atomic"
)

// Engine answers guilt queries over an immutable corpus.
//
// The only mutable state is the query cache and the in-flight call counter, both owned by the
// Engine value. Safe for concurrent use.
type Engine struct {
	corpus     *corpus.Corpus
	facts      *facts.Store
	resolver   *rule.Resolver
	confidence *score.ConfidenceCalculator
	cache      *cache.Cache[QueryResult]

	strict   bool
	workers  int
	recorder Recorder
	observer Observer
	logger   *slog.Logger

	depth atomic.Int64
}

type options struct {
	weights     score.Weights
	strict      bool
	workers     int
	cacheWindow int
	recorder    Recorder
	observer    Observer
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithWeights replaces the evidence importance table used for confidence scores.
func WithWeights(w score.Weights) Option {
	return func(o *options) {
		if w != nil {
			o.weights = w
		}
	}
}

// WithStrictIdentifiers makes IsGuilty reject suspects and crimes absent from the corpus
// with an UnknownIdentifierError instead of reporting them as innocent.
func WithStrictIdentifiers(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithWorkers bounds the number of pairs evaluated concurrently by InvestigateAll.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCacheWindow sets how many recent lookups the approximate cache hit rate covers.
func WithCacheWindow(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheWindow = n
		}
	}
}

// WithRecorder registers a sink for freshly evaluated results.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithObserver registers a metrics observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds an engine over c. The corpus must not be modified afterwards.
func New(c *corpus.Corpus, opts ...Option) *Engine {
	o := options{
		weights:     score.DefaultWeights(),
		workers:     runtime.GOMAXPROCS(0),
		cacheWindow: cache.DefaultWindow,
		recorder:    nopRecorder{},
		observer:    nopObserver{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	resolver := rule.NewResolver(c.Rules, c.CrimeIDs())
	return &Engine{
		corpus:     c,
		facts:      facts.NewStore(c.Facts),
		resolver:   resolver,
		confidence: score.NewConfidenceCalculator(resolver, o.weights),
		cache:      cache.New[QueryResult](o.cacheWindow),
		strict:     o.strict,
		workers:    o.workers,
		recorder:   o.recorder,
		observer:   o.observer,
		logger:     o.logger.With("source", "Engine"),
	}
}

// IsGuilty evaluates suspect against crime. Repeated queries are answered from the cache and
// their reasoning starts with a line saying so.
//
// An error is only returned in strict mode, for identifiers absent from the corpus.
func (e *Engine) IsGuilty(suspect, crime string) (QueryResult, error) {
	e.depth.Add(1)
	defer e.depth.Add(-1)

	if e.strict {
		if !e.corpus.HasSuspect(suspect) {
			return QueryResult{}, NewUnknownIdentifierError("suspect", suspect)
		}
		if !e.corpus.HasCrime(crime) {
			return QueryResult{}, NewUnknownIdentifierError("crime", crime)
		}
	}

	result, hit := e.query(suspect, crime)
	if hit {
		result.Reasoning = append([]string{CacheHitLine}, result.Reasoning...)
	}
	return result, nil
}

// FactsForSuspect returns every fact about suspect in corpus order, empty for unknown suspects.
func (e *Engine) FactsForSuspect(suspect string) []corpus.Fact {
	return e.facts.ForSuspect(suspect)
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	e.logger.Debug("cache cleared")
}

// CacheStats returns query cache statistics. The hit rate is approximate.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.Stats()
}

// SystemStats returns corpus sizes and engine activity.
func (e *Engine) SystemStats() SystemStats {
	return SystemStats{
		TotalFacts:      e.facts.Len(),
		TotalRules:      e.resolver.Len(),
		CacheSize:       e.cache.Len(),
		ActiveCallDepth: e.depth.Load(),
	}
}

// Suspects returns the corpus suspects.
func (e *Engine) Suspects() []corpus.Suspect {
	return append([]corpus.Suspect(nil), e.corpus.Suspects...)
}

// Crimes returns the corpus crimes.
func (e *Engine) Crimes() []corpus.Crime {
	return append([]corpus.Crime(nil), e.corpus.Crimes...)
}

// Rules returns the corpus rules in resolution order.
func (e *Engine) Rules() []rule.Rule {
	return append([]rule.Rule(nil), e.resolver.Rules()...)
}

// query returns a private copy of the cached result for the pair, evaluating it on a miss.
func (e *Engine) query(suspect, crime string) (QueryResult, bool) {
	result, hit := e.cache.GetOrCompute(cacheKey(suspect, crime), func() QueryResult {
		r := e.evaluate(suspect, crime)
		e.recorder.Record(r)
		e.observer.Evaluated(r)
		return r
	})

	if hit {
		e.observer.CacheHit()
	} else {
		e.observer.CacheMiss()
	}
	return result.clone(), hit
}

func cacheKey(suspect, crime string) string {
	return suspect + "-" + crime
}
