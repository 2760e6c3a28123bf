package models

import (
	"time"

	"github.com/google/uuid"
)

// RawCounters is one reporting period's accumulated raw activity for one
// agent. Every field is an additive accumulator: merging two periods means
// summing each field pairwise. Raw values are deliberately not capped against
// their "scheduled" counterpart (working 110h against 100h scheduled stores
// 110); capping only happens when percentages are derived, otherwise merges
// would be lossy.
type RawCounters struct {
	ScheduledHours    float64
	ActualHours       float64
	ScheduledDays     float64
	DaysPresent       float64
	TotalShifts       float64
	OnTimeArrivals    float64
	TotalBreaks       float64
	BreaksWithinLimit float64
	TasksAssigned     float64
	TasksCompleted    float64
	ExpectedOutput    float64
	ActualOutput      float64
	TotalTasks        float64
	ErrorFreeTasks    float64
	StandardTime      float64
	ActualTimeSpent   float64
}

// Add returns the pairwise sum of two raw counter snapshots.
func (c RawCounters) Add(other RawCounters) RawCounters {
	return RawCounters{
		ScheduledHours:    c.ScheduledHours + other.ScheduledHours,
		ActualHours:       c.ActualHours + other.ActualHours,
		ScheduledDays:     c.ScheduledDays + other.ScheduledDays,
		DaysPresent:       c.DaysPresent + other.DaysPresent,
		TotalShifts:       c.TotalShifts + other.TotalShifts,
		OnTimeArrivals:    c.OnTimeArrivals + other.OnTimeArrivals,
		TotalBreaks:       c.TotalBreaks + other.TotalBreaks,
		BreaksWithinLimit: c.BreaksWithinLimit + other.BreaksWithinLimit,
		TasksAssigned:     c.TasksAssigned + other.TasksAssigned,
		TasksCompleted:    c.TasksCompleted + other.TasksCompleted,
		ExpectedOutput:    c.ExpectedOutput + other.ExpectedOutput,
		ActualOutput:      c.ActualOutput + other.ActualOutput,
		TotalTasks:        c.TotalTasks + other.TotalTasks,
		ErrorFreeTasks:    c.ErrorFreeTasks + other.ErrorFreeTasks,
		StandardTime:      c.StandardTime + other.StandardTime,
		ActualTimeSpent:   c.ActualTimeSpent + other.ActualTimeSpent,
	}
}

// DerivedMetrics holds the eight [0,100] percentage metrics. They are always
// recomputed from the current RawCounters snapshot and never merged directly.
type DerivedMetrics struct {
	ScheduleAdherence  float64
	AttendanceRate     float64
	PunctualityScore   float64
	BreakCompliance    float64
	TaskCompletionRate float64
	ProductivityIndex  float64
	QualityScore       float64
	EfficiencyRate     float64
}

// Impact tiers for metric weights.
const (
	WeightHighImpact   = 1.5
	WeightMediumImpact = 1.0
	WeightLowImpact    = 0.5
)

// MetricWeights is a configuration value: one non-negative weight per derived
// metric. Callers may override it per computation; it is never mutated in
// place.
type MetricWeights struct {
	ScheduleAdherence  float64
	AttendanceRate     float64
	PunctualityScore   float64
	BreakCompliance    float64
	TaskCompletionRate float64
	ProductivityIndex  float64
	QualityScore       float64
	EfficiencyRate     float64
}

// DefaultMetricWeights returns the default impact configuration.
func DefaultMetricWeights() MetricWeights {
	return MetricWeights{
		ScheduleAdherence:  WeightHighImpact,
		AttendanceRate:     WeightHighImpact,
		PunctualityScore:   WeightMediumImpact,
		BreakCompliance:    WeightLowImpact,
		TaskCompletionRate: WeightHighImpact,
		ProductivityIndex:  WeightMediumImpact,
		QualityScore:       WeightHighImpact,
		EfficiencyRate:     WeightLowImpact,
	}
}

// ScoreResult is the composite output of the weighted aggregator. Under the
// percentage regime TotalScore and Percentage are identical; for legacy
// records TotalScore is on the 1-5 scale and Percentage on the 0-100 scale.
type ScoreResult struct {
	TotalScore float64
	Percentage float64
}

type ScoreScale string

const (
	ScalePercentage ScoreScale = "percentage"
	ScaleLegacy     ScoreScale = "legacy"
)

func ScoreScaleFrom(s string) ScoreScale {
	switch s {
	case string(ScaleLegacy):
		return ScaleLegacy
	default:
		return ScalePercentage
	}
}

// LegacyRatings are the eight 1-5 integer ratings of records created under
// the old regime. They only exist on legacy-scale records.
type LegacyRatings struct {
	ScheduleAdherence  float64
	AttendanceRate     float64
	PunctualityScore   float64
	BreakCompliance    float64
	TaskCompletionRate float64
	ProductivityIndex  float64
	QualityScore       float64
	EfficiencyRate     float64
}

// ScoreRecord is the persisted scorecard aggregate, keyed uniquely by
// (AgentId, Month, Year). A record is either legacy-scale or
// percentage-scale, fixed at creation time; the two regimes are never mixed
// within one record.
type ScoreRecord struct {
	Id            uuid.UUID
	AgentId       uuid.UUID
	Month         int
	Year          int
	Scale         ScoreScale
	Raw           RawCounters
	Metrics       DerivedMetrics
	Weights       MetricWeights
	LegacyRatings *LegacyRatings
	TotalScore    float64
	Percentage    float64
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UpsertScoreRecordRequest carries the full next state of a record for a
// create-or-replace write on its (AgentId, Month, Year) key.
type UpsertScoreRecordRequest struct {
	AgentId    uuid.UUID
	Month      int
	Year       int
	Scale      ScoreScale
	Raw        RawCounters
	Metrics    DerivedMetrics
	Weights    MetricWeights
	TotalScore float64
	Percentage float64
	Note       *string
}
