package scorecard

import (
	"time"

	"github.com/peakperf/peakperf-backend/models"

	"github.com/cockroachdb/errors"
)

// An arrival within this tolerance of the scheduled start still counts as on
// time.
const onTimeArrivalTolerance = 5 * time.Minute

// rowToRawCounters turns one imported timesheet/task row into single-row raw
// counters, ready to be merged into the period aggregate.
//
// Raw counters must stay non-negative: the pure computation layer trusts its
// input, so the import boundary is where malformed rows are rejected.
func rowToRawCounters(row models.ImportRow) (models.RawCounters, error) {
	if err := validateRowCounters(row); err != nil {
		return models.RawCounters{}, err
	}

	raw := models.RawCounters{
		TasksAssigned:  row.TasksAssigned,
		TasksCompleted: row.TasksCompleted,
		ExpectedOutput: row.ExpectedOutput,
		ActualOutput:   row.OutputUnits,
		TotalTasks:     row.TasksCompleted,
		ErrorFreeTasks: max(0, row.TasksCompleted-row.ErrorsCount),
		// Standard/actual time come in as minutes per task.
		StandardTime:    row.StandardTimeMinutes * row.TasksCompleted,
		ActualTimeSpent: row.ActualTimeMinutes * row.TasksCompleted,
	}

	if row.ScheduledStart != nil && row.ScheduledEnd != nil {
		hours, err := hoursBetween(*row.ScheduledStart, *row.ScheduledEnd)
		if err != nil {
			return models.RawCounters{}, errors.Wrap(err, "scheduled shift")
		}
		raw.ScheduledHours = hours
		raw.ScheduledDays = 1
		raw.TotalShifts = 1
	}

	if row.ActualStart != nil && row.ActualEnd != nil {
		hours, err := hoursBetween(*row.ActualStart, *row.ActualEnd)
		if err != nil {
			return models.RawCounters{}, errors.Wrap(err, "actual shift")
		}
		raw.ActualHours = hours
		raw.DaysPresent = 1
	}

	if row.ActualStart != nil && row.ScheduledStart != nil &&
		!row.ActualStart.After(row.ScheduledStart.Add(onTimeArrivalTolerance)) {
		raw.OnTimeArrivals = 1
	}

	if row.ActualBreakStart != nil && row.ActualBreakEnd != nil {
		actualBreak := row.ActualBreakEnd.Sub(*row.ActualBreakStart)
		if actualBreak < 0 {
			return models.RawCounters{}, errors.Wrap(models.BadParameterError,
				"break end timestamp precedes break start")
		}
		raw.TotalBreaks = 1

		// Without a scheduled break there is no limit to exceed.
		if row.ScheduledBreakStart == nil || row.ScheduledBreakEnd == nil {
			raw.BreaksWithinLimit = 1
		} else if actualBreak <= row.ScheduledBreakEnd.Sub(*row.ScheduledBreakStart) {
			raw.BreaksWithinLimit = 1
		}
	}

	return raw, nil
}

func hoursBetween(start, end time.Time) (float64, error) {
	d := end.Sub(start)
	if d < 0 {
		return 0, errors.Wrap(models.BadParameterError, "end timestamp precedes start")
	}
	return d.Hours(), nil
}

func validateRowCounters(row models.ImportRow) error {
	counters := map[string]float64{
		"tasks_assigned":  row.TasksAssigned,
		"tasks_completed": row.TasksCompleted,
		"errors_count":    row.ErrorsCount,
		"output_units":    row.OutputUnits,
		"expected_output": row.ExpectedOutput,
		"standard_time":   row.StandardTimeMinutes,
		"actual_time":     row.ActualTimeMinutes,
	}
	for name, value := range counters {
		if value < 0 {
			return errors.Wrapf(models.BadParameterError, "counter %s is negative", name)
		}
	}
	return nil
}
