package scorecard

import (
	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/pure_utils"
)

type scoredMetric struct {
	score  float64
	weight float64
}

func weightedAverage(pairs []scoredMetric) (weightedSum, totalWeight float64) {
	for _, p := range pairs {
		// Negative weights are clamped to zero rather than rejected: a
		// misconfigured weight must not flip a metric's contribution.
		weight := max(p.weight, 0)
		weightedSum += p.score * weight
		totalWeight += weight
	}
	return weightedSum, totalWeight
}

func metricWeightPairs(derived models.DerivedMetrics, weights models.MetricWeights) []scoredMetric {
	return []scoredMetric{
		{derived.ScheduleAdherence, weights.ScheduleAdherence},
		{derived.AttendanceRate, weights.AttendanceRate},
		{derived.PunctualityScore, weights.PunctualityScore},
		{derived.BreakCompliance, weights.BreakCompliance},
		{derived.TaskCompletionRate, weights.TaskCompletionRate},
		{derived.ProductivityIndex, weights.ProductivityIndex},
		{derived.QualityScore, weights.QualityScore},
		{derived.EfficiencyRate, weights.EfficiencyRate},
	}
}

// ComputeTotalScore combines the eight derived metrics into one composite
// score: the weighted average of the metrics. Both TotalScore and Percentage
// are on the 0-100 scale and identical under the percentage regime. An
// all-zero weight configuration yields 0 rather than failing.
func ComputeTotalScore(derived models.DerivedMetrics, weights models.MetricWeights) models.ScoreResult {
	weightedSum, totalWeight := weightedAverage(metricWeightPairs(derived, weights))

	score := pure_utils.RoundToDecimals(pure_utils.SafeDiv(weightedSum, totalWeight, 0), 2)
	return models.ScoreResult{
		TotalScore: score,
		Percentage: score,
	}
}

// ComputeLegacyTotalScore aggregates eight 1-5 ratings. TotalScore stays on
// the 1-5 scale; Percentage maps the weighted sum against the maximum
// possible score (5 per metric).
func ComputeLegacyTotalScore(ratings models.LegacyRatings, weights models.MetricWeights) models.ScoreResult {
	pairs := []scoredMetric{
		{ratings.ScheduleAdherence, weights.ScheduleAdherence},
		{ratings.AttendanceRate, weights.AttendanceRate},
		{ratings.PunctualityScore, weights.PunctualityScore},
		{ratings.BreakCompliance, weights.BreakCompliance},
		{ratings.TaskCompletionRate, weights.TaskCompletionRate},
		{ratings.ProductivityIndex, weights.ProductivityIndex},
		{ratings.QualityScore, weights.QualityScore},
		{ratings.EfficiencyRate, weights.EfficiencyRate},
	}
	weightedSum, totalWeight := weightedAverage(pairs)

	return models.ScoreResult{
		TotalScore: pure_utils.RoundToDecimals(pure_utils.SafeDiv(weightedSum, totalWeight, 0), 2),
		Percentage: pure_utils.RoundToDecimals(100*pure_utils.SafeDiv(weightedSum, 5*totalWeight, 0), 2),
	}
}
