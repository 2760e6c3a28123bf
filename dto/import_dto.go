package dto

import (
	"time"

	"github.com/peakperf/peakperf-backend/models"

	"github.com/google/uuid"
)

type ImportRowDto struct {
	EmployeeCode string    `json:"employee_code" binding:"required"`
	EmployeeName string    `json:"employee_name"`
	Date         time.Time `json:"date" binding:"required"`

	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	ActualStart    *time.Time `json:"actual_start"`
	ActualEnd      *time.Time `json:"actual_end"`

	ScheduledBreakStart *time.Time `json:"scheduled_break_start"`
	ScheduledBreakEnd   *time.Time `json:"scheduled_break_end"`
	ActualBreakStart    *time.Time `json:"actual_break_start"`
	ActualBreakEnd      *time.Time `json:"actual_break_end"`

	TasksAssigned       float64 `json:"tasks_assigned"`
	TasksCompleted      float64 `json:"tasks_completed"`
	ErrorsCount         float64 `json:"errors_count"`
	OutputUnits         float64 `json:"output_units"`
	ExpectedOutput      float64 `json:"expected_output"`
	StandardTimeMinutes float64 `json:"standard_time_minutes"`
	ActualTimeMinutes   float64 `json:"actual_time_minutes"`
}

func AdaptImportRow(dto ImportRowDto) models.ImportRow {
	return models.ImportRow{
		EmployeeCode:        dto.EmployeeCode,
		EmployeeName:        dto.EmployeeName,
		Date:                dto.Date,
		ScheduledStart:      dto.ScheduledStart,
		ScheduledEnd:        dto.ScheduledEnd,
		ActualStart:         dto.ActualStart,
		ActualEnd:           dto.ActualEnd,
		ScheduledBreakStart: dto.ScheduledBreakStart,
		ScheduledBreakEnd:   dto.ScheduledBreakEnd,
		ActualBreakStart:    dto.ActualBreakStart,
		ActualBreakEnd:      dto.ActualBreakEnd,
		TasksAssigned:       dto.TasksAssigned,
		TasksCompleted:      dto.TasksCompleted,
		ErrorsCount:         dto.ErrorsCount,
		OutputUnits:         dto.OutputUnits,
		ExpectedOutput:      dto.ExpectedOutput,
		StandardTimeMinutes: dto.StandardTimeMinutes,
		ActualTimeMinutes:   dto.ActualTimeMinutes,
	}
}

type ImportBatchBody struct {
	Month int            `json:"month" binding:"required,min=1,max=12"`
	Year  int            `json:"year" binding:"required"`
	Rows  []ImportRowDto `json:"rows" binding:"required"`
}

type ImportRowResultDto struct {
	EmployeeCode string     `json:"employee_code"`
	AgentId      *uuid.UUID `json:"agent_id,omitempty"`
	RecordId     *uuid.UUID `json:"record_id,omitempty"`
	Error        string     `json:"error,omitempty"`
}

func AdaptImportRowResultDto(result models.ImportRowResult) ImportRowResultDto {
	return ImportRowResultDto{
		EmployeeCode: result.EmployeeCode,
		AgentId:      result.AgentId,
		RecordId:     result.RecordId,
		Error:        result.Error,
	}
}

type BatchImportSummaryDto struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type BatchImportReportDto struct {
	Results []ImportRowResultDto  `json:"results"`
	Summary BatchImportSummaryDto `json:"summary"`
}

func AdaptBatchImportReportDto(report models.BatchImportReport) BatchImportReportDto {
	results := make([]ImportRowResultDto, len(report.Results))
	for i, result := range report.Results {
		results[i] = AdaptImportRowResultDto(result)
	}
	return BatchImportReportDto{
		Results: results,
		Summary: BatchImportSummaryDto(report.Summary),
	}
}
