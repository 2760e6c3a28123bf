package dto

import (
	"time"

	"github.com/peakperf/peakperf-backend/models"

	"github.com/google/uuid"
)

type RawCountersDto struct {
	ScheduledHours    float64 `json:"scheduled_hours"`
	ActualHours       float64 `json:"actual_hours"`
	ScheduledDays     float64 `json:"scheduled_days"`
	DaysPresent       float64 `json:"days_present"`
	TotalShifts       float64 `json:"total_shifts"`
	OnTimeArrivals    float64 `json:"on_time_arrivals"`
	TotalBreaks       float64 `json:"total_breaks"`
	BreaksWithinLimit float64 `json:"breaks_within_limit"`
	TasksAssigned     float64 `json:"tasks_assigned"`
	TasksCompleted    float64 `json:"tasks_completed"`
	ExpectedOutput    float64 `json:"expected_output"`
	ActualOutput      float64 `json:"actual_output"`
	TotalTasks        float64 `json:"total_tasks"`
	ErrorFreeTasks    float64 `json:"error_free_tasks"`
	StandardTime      float64 `json:"standard_time"`
	ActualTimeSpent   float64 `json:"actual_time_spent"`
}

func AdaptRawCountersDto(raw models.RawCounters) RawCountersDto {
	return RawCountersDto(raw)
}

func AdaptRawCounters(dto RawCountersDto) models.RawCounters {
	return models.RawCounters(dto)
}

type DerivedMetricsDto struct {
	ScheduleAdherence  float64 `json:"schedule_adherence"`
	AttendanceRate     float64 `json:"attendance_rate"`
	PunctualityScore   float64 `json:"punctuality_score"`
	BreakCompliance    float64 `json:"break_compliance"`
	TaskCompletionRate float64 `json:"task_completion_rate"`
	ProductivityIndex  float64 `json:"productivity_index"`
	QualityScore       float64 `json:"quality_score"`
	EfficiencyRate     float64 `json:"efficiency_rate"`
}

func AdaptDerivedMetricsDto(metrics models.DerivedMetrics) DerivedMetricsDto {
	return DerivedMetricsDto(metrics)
}

type MetricWeightsDto struct {
	ScheduleAdherence  float64 `json:"schedule_adherence"`
	AttendanceRate     float64 `json:"attendance_rate"`
	PunctualityScore   float64 `json:"punctuality_score"`
	BreakCompliance    float64 `json:"break_compliance"`
	TaskCompletionRate float64 `json:"task_completion_rate"`
	ProductivityIndex  float64 `json:"productivity_index"`
	QualityScore       float64 `json:"quality_score"`
	EfficiencyRate     float64 `json:"efficiency_rate"`
}

func AdaptMetricWeightsDto(weights models.MetricWeights) MetricWeightsDto {
	return MetricWeightsDto(weights)
}

func AdaptMetricWeights(dto MetricWeightsDto) models.MetricWeights {
	return models.MetricWeights(dto)
}

type ScoreRecordDto struct {
	Id         uuid.UUID         `json:"id"`
	AgentId    uuid.UUID         `json:"agent_id"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Scale      string            `json:"scale"`
	Raw        RawCountersDto    `json:"raw_counters"`
	Metrics    DerivedMetricsDto `json:"metrics"`
	Weights    MetricWeightsDto  `json:"weights"`
	TotalScore float64           `json:"total_score"`
	Percentage float64           `json:"percentage"`
	Note       *string           `json:"note,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func AdaptScoreRecordDto(record models.ScoreRecord) ScoreRecordDto {
	return ScoreRecordDto{
		Id:         record.Id,
		AgentId:    record.AgentId,
		Month:      record.Month,
		Year:       record.Year,
		Scale:      string(record.Scale),
		Raw:        AdaptRawCountersDto(record.Raw),
		Metrics:    AdaptDerivedMetricsDto(record.Metrics),
		Weights:    AdaptMetricWeightsDto(record.Weights),
		TotalScore: record.TotalScore,
		Percentage: record.Percentage,
		Note:       record.Note,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

// ComputePreviewBody is the payload of the pure what-if computation
// endpoint: raw counters in, derived metrics and composite score out, no
// record touched.
type ComputePreviewBody struct {
	Raw     RawCountersDto    `json:"raw_counters" binding:"required"`
	Weights *MetricWeightsDto `json:"weights"`
}

type ScoreResultDto struct {
	TotalScore float64 `json:"total_score"`
	Percentage float64 `json:"percentage"`
}

func AdaptScoreResultDto(result models.ScoreResult) ScoreResultDto {
	return ScoreResultDto(result)
}
