package repositories

// PerfDbRepository groups all queries against the application database.
type PerfDbRepository struct{}

func NewPerfDbRepository() *PerfDbRepository {
	return &PerfDbRepository{}
}
