package api

import (
	"net/http"
	"strconv"

	"github.com/peakperf/peakperf-backend/dto"
	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/pure_utils"
	"github.com/peakperf/peakperf-backend/usecases"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func handleImportScorecards(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.ImportBatchBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rows := pure_utils.Map(body.Rows, dto.AdaptImportRow)

		usecase := uc.NewScorecardUsecase()
		report, err := usecase.ImportBatch(ctx, rows, body.Month, body.Year)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptBatchImportReportDto(report))
	}
}

func handleGetScoreRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		agentId, err := uuid.Parse(c.Param("agent_id"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "invalid agent id"))
			return
		}
		month, year, err := parsePeriodQuery(c)
		if err != nil {
			presentError(c, err)
			return
		}

		usecase := uc.NewScorecardUsecase()
		record, err := usecase.GetScoreRecord(ctx, agentId, month, year)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"score_record": dto.AdaptScoreRecordDto(record),
		})
	}
}

func handleListScoreRecords(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		agentId, err := uuid.Parse(c.Param("agent_id"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "invalid agent id"))
			return
		}
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, "invalid year"))
			return
		}

		usecase := uc.NewScorecardUsecase()
		records, err := usecase.ListScoreRecords(ctx, agentId, year)
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"score_records": pure_utils.Map(records, dto.AdaptScoreRecordDto),
		})
	}
}

// handleComputePreview is the pure computation endpoint: derived metrics and
// composite score for posted raw counters, nothing persisted.
func handleComputePreview(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.ComputePreviewBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var weights *models.MetricWeights
		if body.Weights != nil {
			weights = pure_utils.Ptr(dto.AdaptMetricWeights(*body.Weights))
		}

		usecase := uc.NewScorecardUsecase()
		metrics, score := usecase.Preview(dto.AdaptRawCounters(body.Raw), weights)

		c.JSON(http.StatusOK, gin.H{
			"metrics": dto.AdaptDerivedMetricsDto(metrics),
			"score":   dto.AdaptScoreResultDto(score),
		})
	}
}

func parsePeriodQuery(c *gin.Context) (month, year int, err error) {
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, errors.Wrap(models.BadParameterError, "invalid month")
	}
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, errors.Wrap(models.BadParameterError, "invalid year")
	}
	return month, year, nil
}
