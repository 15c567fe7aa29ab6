package services

import (
	"context"
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/pkg/dhlottery"
	"golang.org/x/exp/slog"
)

// DefaultMaxProbes bounds the backward walk when no limit is configured
const DefaultMaxProbes = 50

// DrawLookup queries a single round from the remote service
type DrawLookup interface {
	GetDraw(ctx context.Context, round int) (*dhlottery.DrawResponse, error)
}

// DrawFetcher finds the most recent drawn round by walking backwards from a seed round
type DrawFetcher struct {
	lookup    DrawLookup
	seedRound int
	maxProbes int
}

// NewDrawFetcher creates a DrawFetcher. maxProbes <= 0 uses DefaultMaxProbes.
func NewDrawFetcher(lookup DrawLookup, seedRound, maxProbes int) *DrawFetcher {
	if maxProbes <= 0 {
		maxProbes = DefaultMaxProbes
	}
	return &DrawFetcher{
		lookup:    lookup,
		seedRound: seedRound,
		maxProbes: maxProbes,
	}
}

// FetchLatest queries the seed round and, while the service answers "fail", each
// round below it. The first round that is not flagged is returned.
// After maxProbes flagged rounds, or on reaching round 0, it gives up with ErrLookupExhausted.
func (f *DrawFetcher) FetchLatest(ctx context.Context) (models.DrawResult, error) {
	round := f.seedRound
	for probe := 1; probe <= f.maxProbes && round >= 1; probe++ {
		resp, err := f.lookup.GetDraw(ctx, round)
		if err != nil {
			slog.Error("Draw lookup failed", "error", err, "round", round, "probe", probe)
			return models.DrawResult{}, translateLookupError(err)
		}
		if resp.Failed() {
			slog.Debug("Round not drawn yet, stepping back", "round", round, "probe", probe)
			round--
			continue
		}

		draw, err := extractDraw(round, resp)
		if err != nil {
			slog.Error("Draw response unusable", "error", err, "round", round)
			return models.DrawResult{}, err
		}
		slog.Info("Latest draw resolved", "round", round, "seedRound", f.seedRound, "probes", probe)
		return draw, nil
	}

	return models.DrawResult{}, fmt.Errorf("%w: no drawn round found from seed %d within %d probes",
		models.ErrLookupExhausted, f.seedRound, f.maxProbes)
}

// FetchRound retrieves one specific round
func (f *DrawFetcher) FetchRound(ctx context.Context, round int) (models.DrawResult, error) {
	resp, err := f.lookup.GetDraw(ctx, round)
	if err != nil {
		return models.DrawResult{}, translateLookupError(err)
	}
	if resp.Failed() {
		return models.DrawResult{}, fmt.Errorf("%w: round %d", models.ErrRoundNotDrawn, round)
	}
	return extractDraw(round, resp)
}

func extractDraw(round int, resp *dhlottery.DrawResponse) (models.DrawResult, error) {
	numbers, err := resp.WinningNumbers()
	if err != nil {
		return models.DrawResult{}, translateLookupError(err)
	}
	bonus, err := resp.Bonus()
	if err != nil {
		return models.DrawResult{}, translateLookupError(err)
	}

	seen := make(map[int]bool, len(numbers)+1)
	for _, n := range append(numbers[:], bonus) {
		if n < models.MinNumber || n > models.MaxNumber {
			return models.DrawResult{}, fmt.Errorf("%w: round %d: number %d out of range", models.ErrParse, round, n)
		}
		if seen[n] {
			return models.DrawResult{}, fmt.Errorf("%w: round %d: number %d repeated", models.ErrParse, round, n)
		}
		seen[n] = true
	}

	return models.DrawResult{
		Round:   round,
		Numbers: numbers,
		Bonus:   bonus,
		Date:    resp.DrawDate,
	}, nil
}
