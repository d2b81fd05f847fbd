// Package assist provides the simulated AI helpers: an artwork analyzer that
// returns one of the canned analyses and a community matcher.
package assist

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"artaura/internal/browse"
	"artaura/internal/catalog"
)

const (
	DefaultAnalyzeDelay = 3500 * time.Millisecond
	DefaultMatchDelay   = 2800 * time.Millisecond
)

type Analyzer struct {
	Delay  time.Duration
	Intn   func(n int) int
	Logger *zap.Logger
}

func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{Delay: DefaultAnalyzeDelay, Intn: rand.Intn, Logger: logger}
}

// Analyze waits for the configured delay and picks a result.
func (a *Analyzer) Analyze(ctx context.Context) (catalog.AnalysisResult, error) {
	if err := sleep(ctx, a.Delay); err != nil {
		return catalog.AnalysisResult{}, err
	}
	results := catalog.AnalysisResults()
	intn := a.Intn
	if intn == nil {
		intn = rand.Intn
	}
	r := results[intn(len(results))]
	if a.Logger != nil {
		a.Logger.Debug("artwork analyzed", zap.Int("result", r.ID), zap.String("style", r.PrimaryStyle))
	}
	return r, nil
}

type Matcher struct {
	Delay  time.Duration
	Logger *zap.Logger
}

func NewMatcher(logger *zap.Logger) *Matcher {
	return &Matcher{Delay: DefaultMatchDelay, Logger: logger}
}

// Match waits for the configured delay and returns the best candidates
// sharing at least one of interests.
func (m *Matcher) Match(ctx context.Context, interests []string) ([]catalog.MatchCandidate, error) {
	if err := sleep(ctx, m.Delay); err != nil {
		return nil, err
	}
	matches := browse.MatchArtists(catalog.MatchCandidates(), interests)
	if m.Logger != nil {
		m.Logger.Debug("community matched", zap.Strings("interests", interests), zap.Int("matches", len(matches)))
	}
	return matches, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
