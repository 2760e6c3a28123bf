package scorecard

import (
	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/pure_utils"
)

// The eight derived metrics all follow the same pattern: a ratio of two raw
// counters, expressed as a percentage and clamped to [0,100]. Clamping is a
// policy choice: the metrics measure compliance, so over-performance
// (working more hours than scheduled) does not score above the ceiling.
//
// Each metric has a documented zero-denominator default. Break compliance
// defaults to 100: an agent that took no breaks is fully compliant.

func ratioMetric(num, den, zeroDenominatorDefault float64) float64 {
	if den <= 0 {
		return zeroDenominatorDefault
	}
	return pure_utils.ClampPercentage(100 * pure_utils.SafeDiv(num, den, 0))
}

func ScheduleAdherence(actualHours, scheduledHours float64) float64 {
	return ratioMetric(actualHours, scheduledHours, 0)
}

func AttendanceRate(daysPresent, scheduledDays float64) float64 {
	return ratioMetric(daysPresent, scheduledDays, 0)
}

func PunctualityScore(onTimeArrivals, totalShifts float64) float64 {
	return ratioMetric(onTimeArrivals, totalShifts, 0)
}

func BreakCompliance(breaksWithinLimit, totalBreaks float64) float64 {
	return ratioMetric(breaksWithinLimit, totalBreaks, 100)
}

func TaskCompletionRate(tasksCompleted, tasksAssigned float64) float64 {
	return ratioMetric(tasksCompleted, tasksAssigned, 0)
}

func ProductivityIndex(actualOutput, expectedOutput float64) float64 {
	return ratioMetric(actualOutput, expectedOutput, 0)
}

func QualityScore(errorFreeTasks, totalTasks float64) float64 {
	return ratioMetric(errorFreeTasks, totalTasks, 0)
}

func EfficiencyRate(standardTime, actualTimeSpent float64) float64 {
	return ratioMetric(standardTime, actualTimeSpent, 0)
}

// ComputeMetrics derives the eight percentage metrics from a raw counters
// snapshot. Pure: derived metrics are always recomputed from raw sums, never
// merged or stored on their own.
func ComputeMetrics(raw models.RawCounters) models.DerivedMetrics {
	return models.DerivedMetrics{
		ScheduleAdherence:  ScheduleAdherence(raw.ActualHours, raw.ScheduledHours),
		AttendanceRate:     AttendanceRate(raw.DaysPresent, raw.ScheduledDays),
		PunctualityScore:   PunctualityScore(raw.OnTimeArrivals, raw.TotalShifts),
		BreakCompliance:    BreakCompliance(raw.BreaksWithinLimit, raw.TotalBreaks),
		TaskCompletionRate: TaskCompletionRate(raw.TasksCompleted, raw.TasksAssigned),
		ProductivityIndex:  ProductivityIndex(raw.ActualOutput, raw.ExpectedOutput),
		QualityScore:       QualityScore(raw.ErrorFreeTasks, raw.TotalTasks),
		EfficiencyRate:     EfficiencyRate(raw.StandardTime, raw.ActualTimeSpent),
	}
}
