package engine

import "time"

// Recorder persists freshly evaluated results, e.g. into an audit journal.
type Recorder interface {
	Record(result QueryResult)
}

// Observer receives engine events for metrics.
type Observer interface {
	CacheHit()
	CacheMiss()
	Evaluated(result QueryResult)
	Investigated(elapsed time.Duration, statistics Statistics)
}

type nopRecorder struct{}

func (nopRecorder) Record(QueryResult) {}

type nopObserver struct{}

func (nopObserver) CacheHit()                              {}
func (nopObserver) CacheMiss()                             {}
func (nopObserver) Evaluated(QueryResult)                  {}
func (nopObserver) Investigated(time.Duration, Statistics) {}
