package usecases

import (
	"github.com/peakperf/peakperf-backend/repositories"
	"github.com/peakperf/peakperf-backend/usecases/executor_factory"
	"github.com/peakperf/peakperf-backend/usecases/scorecard"
)

type Usecases struct {
	ExecutorGetter repositories.ExecutorGetter
	Repository     *repositories.PerfDbRepository
}

func NewUsecases(executorGetter repositories.ExecutorGetter, repository *repositories.PerfDbRepository) Usecases {
	return Usecases{
		ExecutorGetter: executorGetter,
		Repository:     repository,
	}
}

func (u Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.ExecutorGetter)
}

func (u Usecases) NewScorecardUsecase() scorecard.ScorecardUsecase {
	return scorecard.NewScorecardUsecase(
		u.NewExecutorFactory(),
		u.NewExecutorFactory(),
		u.Repository,
		u.Repository,
	)
}

func (u Usecases) NewAgentUsecase() AgentUsecase {
	return AgentUsecase{
		executorFactory: u.NewExecutorFactory(),
		repository:      u.Repository,
	}
}
