package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportRow is one external timesheet/task record, one per employee per day.
// Timestamp pairs are optional at the transport level; which ones are
// required for which counters is decided at the import boundary.
type ImportRow struct {
	EmployeeCode string
	EmployeeName string
	Date         time.Time

	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	ActualStart    *time.Time
	ActualEnd      *time.Time

	ScheduledBreakStart *time.Time
	ScheduledBreakEnd   *time.Time
	ActualBreakStart    *time.Time
	ActualBreakEnd      *time.Time

	TasksAssigned  float64
	TasksCompleted float64
	ErrorsCount    float64
	OutputUnits    float64
	ExpectedOutput float64
	// Minutes per the task standard, and minutes actually spent.
	StandardTimeMinutes float64
	ActualTimeMinutes   float64
}

// ImportRowResult is the per-row outcome of a batch import. Exactly one of
// (AgentId, RecordId) or Error is populated.
type ImportRowResult struct {
	EmployeeCode string
	AgentId      *uuid.UUID
	RecordId     *uuid.UUID
	Error        string
}

func (r ImportRowResult) Success() bool {
	return r.Error == ""
}

type BatchImportSummary struct {
	Total      int
	Successful int
	Failed     int
}

// BatchImportReport is returned to the import endpoint caller: one result per
// input row, in input order, plus aggregate counts.
type BatchImportReport struct {
	Results []ImportRowResult
	Summary BatchImportSummary
}
