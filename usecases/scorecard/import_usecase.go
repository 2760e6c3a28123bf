package scorecard

import (
	"context"
	"fmt"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories"
	"github.com/peakperf/peakperf-backend/usecases/executor_factory"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// Upper bound on employee groups merged in parallel within one batch.
	maxConcurrentImportGroups = 8

	// Attempts for one row's read-merge-upsert transaction when the database
	// reports a transient deadlock or serialization failure.
	mergeTransactionAttempts = 3
)

type ScorecardUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         scorecardRepository
	agentRepository    agentRepository
}

func NewScorecardUsecase(
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	repository scorecardRepository,
	agentRepository agentRepository,
) ScorecardUsecase {
	return ScorecardUsecase{
		executorFactory:    executorFactory,
		transactionFactory: transactionFactory,
		repository:         repository,
		agentRepository:    agentRepository,
	}
}

// GetScoreRecord returns the stored aggregate for one agent and period.
func (uc ScorecardUsecase) GetScoreRecord(ctx context.Context,
	agentId uuid.UUID, month, year int,
) (models.ScoreRecord, error) {
	if month < 1 || month > 12 {
		return models.ScoreRecord{}, models.ErrInvalidReportingPeriod
	}

	record, err := uc.repository.GetScoreRecord(ctx, uc.executorFactory.NewExecutor(), agentId, month, year)
	if err != nil {
		return models.ScoreRecord{}, err
	}
	if record == nil {
		return models.ScoreRecord{}, errors.Wrapf(models.NotFoundError,
			"no score record for agent %s on %d/%d", agentId, month, year)
	}
	return bridgeIfLegacy(*record), nil
}

func (uc ScorecardUsecase) ListScoreRecords(ctx context.Context,
	agentId uuid.UUID, year int,
) ([]models.ScoreRecord, error) {
	records, err := uc.repository.ListScoreRecordsForAgent(ctx, uc.executorFactory.NewExecutor(), agentId, year)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		records[i] = bridgeIfLegacy(record)
	}
	return records, nil
}

// bridgeIfLegacy fills the percentage view of a legacy-scale record from its
// 1-5 ratings. The scale bridge is the only conversion boundary between the
// two regimes; stored legacy fields are left untouched.
func bridgeIfLegacy(record models.ScoreRecord) models.ScoreRecord {
	if record.Scale == models.ScaleLegacy && record.LegacyRatings != nil {
		record.Metrics = BridgeLegacyRatings(*record.LegacyRatings)
	}
	return record
}

// Preview computes derived metrics and the composite score for a raw
// counters snapshot without touching any stored record. Used by dashboards
// for what-if displays.
func (uc ScorecardUsecase) Preview(raw models.RawCounters,
	weights *models.MetricWeights,
) (models.DerivedMetrics, models.ScoreResult) {
	w := models.DefaultMetricWeights()
	if weights != nil {
		w = *weights
	}

	metrics := ComputeMetrics(raw)
	return metrics, ComputeTotalScore(metrics, w)
}

// ImportBatch merges a batch of timesheet/task rows into the score records of
// the given reporting period. Rows are grouped by employee code before
// dispatch: groups run concurrently, rows within one group are merged
// strictly in input order. Two rows for the same aggregate key must never
// race the read-merge-upsert cycle, or the second writer would overwrite the
// first one's contribution with a merge computed from a stale snapshot.
//
// A row failure (unknown employee, malformed timestamps, storage error) is
// reported per row and never aborts its siblings.
func (uc ScorecardUsecase) ImportBatch(ctx context.Context,
	rows []models.ImportRow, month, year int,
) (models.BatchImportReport, error) {
	if month < 1 || month > 12 {
		return models.BatchImportReport{}, models.ErrInvalidReportingPeriod
	}

	results := make([]models.ImportRowResult, len(rows))
	for i, row := range rows {
		results[i] = models.ImportRowResult{EmployeeCode: row.EmployeeCode}
	}

	// Row indices per employee code, preserving input order within a group.
	groups := make(map[string][]int)
	order := make([]string, 0)
	for i, row := range rows {
		if row.EmployeeCode == "" {
			results[i].Error = "row has no employee code"
			continue
		}
		if _, seen := groups[row.EmployeeCode]; !seen {
			order = append(order, row.EmployeeCode)
		}
		groups[row.EmployeeCode] = append(groups[row.EmployeeCode], i)
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentImportGroups)

	for _, code := range order {
		rowIndices := groups[code]
		g.Go(func() error {
			uc.importAgentRows(groupCtx, code, rows, rowIndices, month, year, results)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.BatchImportReport{}, err
	}

	report := models.BatchImportReport{Results: results}
	for _, result := range results {
		report.Summary.Total++
		if result.Success() {
			report.Summary.Successful++
		} else {
			report.Summary.Failed++
		}
	}

	logger := utils.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "scorecard batch import done",
		"month", month,
		"year", year,
		"total", report.Summary.Total,
		"successful", report.Summary.Successful,
		"failed", report.Summary.Failed,
	)

	return report, nil
}

// importAgentRows merges all of one employee's rows sequentially, writing
// per-row outcomes into results.
func (uc ScorecardUsecase) importAgentRows(ctx context.Context,
	code string, rows []models.ImportRow, rowIndices []int,
	month, year int, results []models.ImportRowResult,
) {
	agent, err := uc.agentRepository.GetAgentByExternalCode(ctx, uc.executorFactory.NewExecutor(), code)
	if err != nil {
		message := fmt.Sprintf("could not resolve employee code '%s'", code)
		if !errors.Is(err, models.NotFoundError) {
			message = fmt.Sprintf("agent lookup failed for '%s': %v", code, err)
		}
		for _, i := range rowIndices {
			results[i].Error = message
		}
		return
	}

	for _, i := range rowIndices {
		record, err := uc.mergeRow(ctx, agent.Id, rows[i], month, year)
		if err != nil {
			results[i].Error = err.Error()
			continue
		}
		results[i].AgentId = &agent.Id
		results[i].RecordId = &record.Id
	}
}

// mergeRow runs one row's read-merge-upsert cycle in a transaction, retried
// on transient conflicts.
func (uc ScorecardUsecase) mergeRow(ctx context.Context,
	agentId uuid.UUID, row models.ImportRow, month, year int,
) (models.ScoreRecord, error) {
	incoming, err := rowToRawCounters(row)
	if err != nil {
		return models.ScoreRecord{}, err
	}

	return retry.DoWithData(
		func() (models.ScoreRecord, error) {
			return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
				func(tx repositories.Transaction) (models.ScoreRecord, error) {
					return uc.mergeRowInTransaction(ctx, tx, agentId, incoming, month, year)
				})
		},
		retry.Context(ctx),
		retry.Attempts(mergeTransactionAttempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return repositories.IsDeadlockError(err) || repositories.IsSerializationFailureError(err)
		}),
	)
}

func (uc ScorecardUsecase) mergeRowInTransaction(ctx context.Context,
	tx repositories.Transaction, agentId uuid.UUID,
	incoming models.RawCounters, month, year int,
) (models.ScoreRecord, error) {
	existing, err := uc.repository.GetScoreRecord(ctx, tx, agentId, month, year)
	if err != nil {
		return models.ScoreRecord{}, err
	}

	var existingRaw *models.RawCounters
	weights := models.DefaultMetricWeights()
	if existing != nil {
		if existing.Scale == models.ScaleLegacy {
			return models.ScoreRecord{}, models.ErrLegacyScaleRecord
		}
		existingRaw = &existing.Raw
		weights = existing.Weights
	}

	merged := MergeAndScore(existingRaw, incoming, weights)

	return uc.repository.UpsertScoreRecord(ctx, tx, models.UpsertScoreRecordRequest{
		AgentId:    agentId,
		Month:      month,
		Year:       year,
		Scale:      models.ScalePercentage,
		Raw:        merged.Raw,
		Metrics:    merged.Metrics,
		Weights:    weights,
		TotalScore: merged.Score.TotalScore,
		Percentage: merged.Score.Percentage,
	})
}
