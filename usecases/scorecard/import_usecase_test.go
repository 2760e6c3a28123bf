package scorecard

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/peakperf/peakperf-backend/models"
	"github.com/peakperf/peakperf-backend/repositories"
	"github.com/peakperf/peakperf-backend/usecases/executor_factory"
	"github.com/peakperf/peakperf-backend/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAgentRepository struct {
	mock.Mock
}

func (m *MockAgentRepository) GetAgentByExternalCode(ctx context.Context,
	exec repositories.Executor, code string,
) (models.Agent, error) {
	args := m.Called(ctx, exec, code)
	return args.Get(0).(models.Agent), args.Error(1)
}

// inMemoryScoreStore gives the import tests real read-your-own-write
// semantics on the (agent, month, year) key, which a call-recording mock
// cannot provide.
type inMemoryScoreStore struct {
	mu      sync.Mutex
	records map[string]models.ScoreRecord
}

func newInMemoryScoreStore() *inMemoryScoreStore {
	return &inMemoryScoreStore{records: make(map[string]models.ScoreRecord)}
}

func storeKey(agentId uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s:%d:%d", agentId, month, year)
}

func (s *inMemoryScoreStore) GetScoreRecord(ctx context.Context, exec repositories.Executor,
	agentId uuid.UUID, month, year int,
) (*models.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[storeKey(agentId, month, year)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *inMemoryScoreStore) ListScoreRecordsForAgent(ctx context.Context, exec repositories.Executor,
	agentId uuid.UUID, year int,
) ([]models.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.ScoreRecord, 0)
	for _, record := range s.records {
		if record.AgentId == agentId && record.Year == year {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Month < records[j].Month })
	return records, nil
}

func (s *inMemoryScoreStore) UpsertScoreRecord(ctx context.Context, tx repositories.Transaction,
	req models.UpsertScoreRecordRequest,
) (models.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey(req.AgentId, req.Month, req.Year)
	record, ok := s.records[key]
	if !ok {
		record = models.ScoreRecord{
			Id:        uuid.New(),
			AgentId:   req.AgentId,
			Month:     req.Month,
			Year:      req.Year,
			CreatedAt: time.Now(),
		}
	}
	record.Scale = req.Scale
	record.Raw = req.Raw
	record.Metrics = req.Metrics
	record.Weights = req.Weights
	record.TotalScore = req.TotalScore
	record.Percentage = req.Percentage
	record.UpdatedAt = time.Now()

	s.records[key] = record
	return record, nil
}

func (s *inMemoryScoreStore) seed(record models.ScoreRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[storeKey(record.AgentId, record.Month, record.Year)] = record
}

func newTestScorecardUsecase(store *inMemoryScoreStore, agentRepo *MockAgentRepository) ScorecardUsecase {
	stub := executor_factory.NewExecutorFactoryStub()
	return NewScorecardUsecase(stub, stub, store, agentRepo)
}

func taskRow(code string, assigned, completed float64) models.ImportRow {
	return models.ImportRow{
		EmployeeCode:   code,
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TasksAssigned:  assigned,
		TasksCompleted: completed,
	}
}

func TestImportBatch_CreatesRecordOnFirstRow(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agent := models.Agent{Id: uuid.New(), ExternalCode: "E-1042"}
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "E-1042").
		Return(agent, nil)

	uc := newTestScorecardUsecase(store, agentRepo)

	report, err := uc.ImportBatch(ctx, []models.ImportRow{taskRow("E-1042", 10, 8)}, 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Successful)
	assert.Equal(t, 0, report.Summary.Failed)
	require.NotNil(t, report.Results[0].AgentId)
	assert.Equal(t, agent.Id, *report.Results[0].AgentId)
	require.NotNil(t, report.Results[0].RecordId)

	stored, err := store.GetScoreRecord(ctx, nil, agent.Id, 3, 2026)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 10.0, stored.Raw.TasksAssigned)
	assert.Equal(t, 8.0, stored.Raw.TasksCompleted)
	assert.Equal(t, models.ScalePercentage, stored.Scale)
	assert.Equal(t, 80.0, stored.Metrics.TaskCompletionRate)
}

func TestImportBatch_SameKeyRowsAreSummedNotOverwritten(t *testing.T) {
	// Two rows for the same (agent, month, year) in one batch: the stored
	// record must hold the sum of both rows' counters, never just the
	// last-processed row's merge against a stale snapshot.
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agent := models.Agent{Id: uuid.New(), ExternalCode: "E-1042"}
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "E-1042").
		Return(agent, nil)

	uc := newTestScorecardUsecase(store, agentRepo)

	rows := []models.ImportRow{
		taskRow("E-1042", 10, 8),
		taskRow("E-1042", 5, 5),
	}
	report, err := uc.ImportBatch(ctx, rows, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.Successful)

	stored, err := store.GetScoreRecord(ctx, nil, agent.Id, 3, 2026)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 15.0, stored.Raw.TasksAssigned)
	assert.Equal(t, 13.0, stored.Raw.TasksCompleted)
	assert.InDelta(t, 86.67, stored.Metrics.TaskCompletionRate, 0.01)
}

func TestImportBatch_ManyRowsManyAgents(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agents := make([]models.Agent, 20)
	for i := range agents {
		agents[i] = models.Agent{Id: uuid.New(), ExternalCode: fmt.Sprintf("E-%d", i)}
		agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, agents[i].ExternalCode).
			Return(agents[i], nil)
	}

	// 10 rows per agent, interleaved across agents.
	rows := make([]models.ImportRow, 0, len(agents)*10)
	for day := 0; day < 10; day++ {
		for i := range agents {
			rows = append(rows, taskRow(agents[i].ExternalCode, 10, 9))
		}
	}

	uc := newTestScorecardUsecase(store, agentRepo)
	report, err := uc.ImportBatch(ctx, rows, 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, len(rows), report.Summary.Successful)

	for i := range agents {
		stored, err := store.GetScoreRecord(ctx, nil, agents[i].Id, 3, 2026)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 100.0, stored.Raw.TasksAssigned)
		assert.Equal(t, 90.0, stored.Raw.TasksCompleted)
	}
}

func TestImportBatch_UnknownEmployeeCodeFailsOnlyItsRows(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agent := models.Agent{Id: uuid.New(), ExternalCode: "E-1042"}
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "E-1042").
		Return(agent, nil)
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "GHOST").
		Return(models.Agent{}, errors.Wrap(models.ErrUnknownAgent, "external code 'GHOST'"))

	uc := newTestScorecardUsecase(store, agentRepo)

	rows := []models.ImportRow{
		taskRow("GHOST", 3, 3),
		taskRow("E-1042", 10, 8),
	}
	report, err := uc.ImportBatch(ctx, rows, 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Successful)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Contains(t, report.Results[0].Error, "GHOST")
	assert.True(t, report.Results[1].Success())
}

func TestImportBatch_MalformedRowDoesNotAbortSiblings(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agent := models.Agent{Id: uuid.New(), ExternalCode: "E-1042"}
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "E-1042").
		Return(agent, nil)

	badRow := taskRow("E-1042", 10, 8)
	start := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	badRow.ActualStart = &start
	badRow.ActualEnd = &end

	uc := newTestScorecardUsecase(store, agentRepo)

	report, err := uc.ImportBatch(ctx, []models.ImportRow{badRow, taskRow("E-1042", 5, 5)}, 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 1, report.Summary.Successful)

	// Only the valid row's counters made it into the aggregate.
	stored, err := store.GetScoreRecord(ctx, nil, agent.Id, 3, 2026)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 5.0, stored.Raw.TasksAssigned)
}

func TestImportBatch_RejectsInvalidMonth(t *testing.T) {
	uc := newTestScorecardUsecase(newInMemoryScoreStore(), new(MockAgentRepository))

	_, err := uc.ImportBatch(context.Background(), []models.ImportRow{taskRow("E-1042", 1, 1)}, 13, 2026)
	assert.True(t, errors.Is(err, models.ErrInvalidReportingPeriod))
}

func TestImportBatch_LegacyScaleRecordRejectsImports(t *testing.T) {
	ctx := utils.StoreLoggerInContext(context.Background(), utils.NewLogger("text"))
	store := newInMemoryScoreStore()
	agentRepo := new(MockAgentRepository)

	agent := models.Agent{Id: uuid.New(), ExternalCode: "E-1042"}
	agentRepo.On("GetAgentByExternalCode", mock.Anything, mock.Anything, "E-1042").
		Return(agent, nil)

	store.seed(models.ScoreRecord{
		Id:      uuid.New(),
		AgentId: agent.Id,
		Month:   3,
		Year:    2026,
		Scale:   models.ScaleLegacy,
		LegacyRatings: &models.LegacyRatings{
			ScheduleAdherence: 4,
		},
	})

	uc := newTestScorecardUsecase(store, agentRepo)

	report, err := uc.ImportBatch(ctx, []models.ImportRow{taskRow("E-1042", 10, 8)}, 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Failed)
	assert.Contains(t, report.Results[0].Error, "legacy")
}

func TestGetScoreRecord_NotFound(t *testing.T) {
	uc := newTestScorecardUsecase(newInMemoryScoreStore(), new(MockAgentRepository))

	_, err := uc.GetScoreRecord(context.Background(), uuid.New(), 3, 2026)
	assert.True(t, errors.Is(err, models.NotFoundError))
}

func TestGetScoreRecord_BridgesLegacyRecords(t *testing.T) {
	store := newInMemoryScoreStore()
	agentId := uuid.New()
	store.seed(models.ScoreRecord{
		Id:      uuid.New(),
		AgentId: agentId,
		Month:   1,
		Year:    2024,
		Scale:   models.ScaleLegacy,
		LegacyRatings: &models.LegacyRatings{
			ScheduleAdherence:  5,
			AttendanceRate:     3,
			PunctualityScore:   1,
			BreakCompliance:    3,
			TaskCompletionRate: 3,
			ProductivityIndex:  3,
			QualityScore:       3,
			EfficiencyRate:     3,
		},
	})

	uc := newTestScorecardUsecase(store, new(MockAgentRepository))

	record, err := uc.GetScoreRecord(context.Background(), agentId, 1, 2024)
	require.NoError(t, err)

	assert.Equal(t, models.ScaleLegacy, record.Scale)
	assert.Equal(t, 100.0, record.Metrics.ScheduleAdherence)
	assert.Equal(t, 50.0, record.Metrics.AttendanceRate)
	assert.Equal(t, 0.0, record.Metrics.PunctualityScore)
}

func TestPreview_UsesDefaultWeightsWhenNotProvided(t *testing.T) {
	uc := newTestScorecardUsecase(newInMemoryScoreStore(), new(MockAgentRepository))

	raw := models.RawCounters{TasksAssigned: 10, TasksCompleted: 8}
	metrics, score := uc.Preview(raw, nil)

	assert.Equal(t, 80.0, metrics.TaskCompletionRate)
	expected := ComputeTotalScore(ComputeMetrics(raw), models.DefaultMetricWeights())
	assert.Equal(t, expected, score)
}
