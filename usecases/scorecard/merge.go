package scorecard

import (
	"github.com/peakperf/peakperf-backend/models"
)

// MergeRawCounters sums a newly imported row's counters into an existing
// period aggregate. A nil existing snapshot (first row for the key) yields
// the incoming counters unchanged.
//
// Merging is plain pairwise summation, no averaging and no weighting by row
// count. Because percentages are derived after the merge from summed raw
// counters, two small rows ("Monday" and "Tuesday") combine into a
// statistically correct period average; averaging two already-computed
// percentages would mis-weight days with different denominators.
//
// Merging the same row twice double-counts it. That is the caller's error,
// not something the engine silently absorbs.
func MergeRawCounters(existing *models.RawCounters, incoming models.RawCounters) models.RawCounters {
	if existing == nil {
		return incoming
	}
	return existing.Add(incoming)
}

// MergeResult is the full output of one merge step: the new raw aggregate
// and the metrics/score recomputed from it.
type MergeResult struct {
	Raw     models.RawCounters
	Metrics models.DerivedMetrics
	Score   models.ScoreResult
}

// MergeAndScore merges one row into the existing aggregate and recomputes
// derived metrics and the composite score from the merged snapshot. Derived
// values are never merged, only recomputed; that step is pure and idempotent
// for a fixed merged snapshot.
func MergeAndScore(existing *models.RawCounters, incoming models.RawCounters,
	weights models.MetricWeights,
) MergeResult {
	merged := MergeRawCounters(existing, incoming)
	metrics := ComputeMetrics(merged)

	return MergeResult{
		Raw:     merged,
		Metrics: metrics,
		Score:   ComputeTotalScore(metrics, weights),
	}
}
