package scorecard

import (
	"math"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/pure_utils"
)

// Scale bridge between the legacy 1-5 rating scale and the 0-100 percentage
// scale, used only when reading records created under the old regime. The two
// maps are exact inverses at the five grid points {1,2,3,4,5}.

// MetricToPercentage maps a 1-5 rating onto 0-100. Out-of-range or NaN input
// is treated as the minimum rating.
func MetricToPercentage(score float64) float64 {
	if math.IsNaN(score) {
		score = 1
	}
	score = pure_utils.Clamp(score, 1, 5)
	return (score - 1) / 4 * 100
}

// PercentageToMetric is the inverse affine map, re-clamped to [1,5].
func PercentageToMetric(percentage float64) float64 {
	if math.IsNaN(percentage) {
		percentage = 0
	}
	return pure_utils.Clamp(percentage/100*4+1, 1, 5)
}

// BridgeLegacyRatings expresses a legacy record's eight 1-5 ratings on the
// percentage scale, for display alongside new-regime records.
func BridgeLegacyRatings(ratings models.LegacyRatings) models.DerivedMetrics {
	return models.DerivedMetrics{
		ScheduleAdherence:  MetricToPercentage(ratings.ScheduleAdherence),
		AttendanceRate:     MetricToPercentage(ratings.AttendanceRate),
		PunctualityScore:   MetricToPercentage(ratings.PunctualityScore),
		BreakCompliance:    MetricToPercentage(ratings.BreakCompliance),
		TaskCompletionRate: MetricToPercentage(ratings.TaskCompletionRate),
		ProductivityIndex:  MetricToPercentage(ratings.ProductivityIndex),
		QualityScore:       MetricToPercentage(ratings.QualityScore),
		EfficiencyRate:     MetricToPercentage(ratings.EfficiencyRate),
	}
}
