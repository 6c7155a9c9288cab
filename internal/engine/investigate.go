package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// InvestigateAll evaluates every suspect against every crime and ranks the pairs that have
// at least one piece of evidence.
//
// Ranking, in order of precedence:
//  1. guilty before not guilty;
//  2. more evidence before less;
//  3. higher confidence before lower.
//
// Remaining ties keep corpus order (suspects first, then crimes), so the ranking is deterministic.
func (e *Engine) InvestigateAll() InvestigationReport {
	e.depth.Add(1)
	defer e.depth.Add(-1)

	started := time.Now()
	suspects := e.corpus.SuspectIDs()
	crimes := e.corpus.CrimeIDs()

	evaluated := make([]QueryResult, len(suspects)*len(crimes))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, suspect := range suspects {
		for j, crime := range crimes {
			idx := i*len(crimes) + j
			g.Go(func() error {
				evaluated[idx], _ = e.query(suspect, crime)
				return nil
			})
		}
	}
	_ = g.Wait()

	retained := make([]QueryResult, 0, len(evaluated))
	for _, r := range evaluated {
		if len(r.Evidence) > 0 {
			retained = append(retained, r)
		}
	}
	Rank(retained)

	report := InvestigationReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Results:     retained,
		Statistics:  summarize(retained, len(evaluated)),
	}

	elapsed := time.Since(started)
	e.observer.Investigated(elapsed, report.Statistics)
	e.logger.Info("investigation finished",
		"id", report.ID,
		"retained", report.Statistics.Retained,
		"guilty", report.Statistics.Guilty,
		"elapsed", elapsed,
	)
	return report
}

// Rank sorts results in place: guilty first, then by evidence count, then by confidence.
// The sort is stable.
func Rank(results []QueryResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Guilty != results[j].Guilty {
			return results[i].Guilty
		}
		if len(results[i].Evidence) != len(results[j].Evidence) {
			return len(results[i].Evidence) > len(results[j].Evidence)
		}
		return results[i].Confidence > results[j].Confidence
	})
}

func summarize(retained []QueryResult, possiblePairs int) Statistics {
	stats := Statistics{
		Retained:      len(retained),
		PossiblePairs: possiblePairs,
	}
	for _, r := range retained {
		if r.Guilty {
			stats.Guilty++
		}
		stats.TotalEvidence += len(r.Evidence)
	}
	if possiblePairs > 0 {
		stats.ResolutionRate = float64(stats.Guilty) / float64(possiblePairs)
	}
	return stats
}
