package scorecard

import (
	"testing"

	"github.com/peakperf/peakperf-backend/models"

	"github.com/stretchr/testify/assert"
)

func allMetricsAt(value float64) models.DerivedMetrics {
	return models.DerivedMetrics{
		ScheduleAdherence:  value,
		AttendanceRate:     value,
		PunctualityScore:   value,
		BreakCompliance:    value,
		TaskCompletionRate: value,
		ProductivityIndex:  value,
		QualityScore:       value,
		EfficiencyRate:     value,
	}
}

func TestComputeTotalScore_AllPerfectMetrics(t *testing.T) {
	result := ComputeTotalScore(allMetricsAt(100), models.DefaultMetricWeights())

	assert.Equal(t, 100.0, result.TotalScore)
	assert.Equal(t, 100.0, result.Percentage)
}

func TestComputeTotalScore_AllZeroWeights(t *testing.T) {
	// No division-by-zero propagation: degrades to 0.
	result := ComputeTotalScore(allMetricsAt(80), models.MetricWeights{})

	assert.Equal(t, 0.0, result.TotalScore)
	assert.Equal(t, 0.0, result.Percentage)
}

func TestComputeTotalScore_NegativeWeightClampedToZero(t *testing.T) {
	weights := models.MetricWeights{
		ScheduleAdherence: 1,
		AttendanceRate:    -5,
	}
	derived := models.DerivedMetrics{
		ScheduleAdherence: 80,
		AttendanceRate:    20,
	}

	result := ComputeTotalScore(derived, weights)

	// Only schedule adherence contributes.
	assert.Equal(t, 80.0, result.TotalScore)
}

func TestComputeTotalScore_WeightedAverage(t *testing.T) {
	weights := models.MetricWeights{
		ScheduleAdherence:  models.WeightHighImpact,
		TaskCompletionRate: models.WeightLowImpact,
	}
	derived := models.DerivedMetrics{
		ScheduleAdherence:  90,
		TaskCompletionRate: 60,
	}

	result := ComputeTotalScore(derived, weights)

	// (90*1.5 + 60*0.5) / 2 = 82.5
	assert.Equal(t, 82.5, result.TotalScore)
	assert.Equal(t, result.TotalScore, result.Percentage)
}

func TestComputeLegacyTotalScore(t *testing.T) {
	ratings := models.LegacyRatings{
		ScheduleAdherence:  5,
		AttendanceRate:     5,
		PunctualityScore:   5,
		BreakCompliance:    5,
		TaskCompletionRate: 5,
		ProductivityIndex:  5,
		QualityScore:       5,
		EfficiencyRate:     5,
	}

	result := ComputeLegacyTotalScore(ratings, models.DefaultMetricWeights())

	// Legacy total score stays on the 1-5 scale; percentage maps against the
	// maximum possible score.
	assert.Equal(t, 5.0, result.TotalScore)
	assert.Equal(t, 100.0, result.Percentage)
}

func TestComputeLegacyTotalScore_AllZeroWeights(t *testing.T) {
	result := ComputeLegacyTotalScore(models.LegacyRatings{ScheduleAdherence: 4}, models.MetricWeights{})

	assert.Equal(t, 0.0, result.TotalScore)
	assert.Equal(t, 0.0, result.Percentage)
}
