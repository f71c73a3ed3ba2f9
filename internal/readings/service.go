package readings

import "context"

// Service wraps the reading store. Write deliberately takes the subject as an
// argument and performs no ownership check: any authenticated caller may
// overwrite any subject's reading. Sensor gateways report on behalf of
// participants, so the permissiveness is intentional.
type Service interface {
	Write(ctx context.Context, subjectID, humidity, moistureContent, storageConditions uint64) error
	Read(ctx context.Context, subjectID uint64) (Reading, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Write(ctx context.Context, subjectID, humidity, moistureContent, storageConditions uint64) error {
	return s.repo.Upsert(ctx, Reading{
		SubjectID:         subjectID,
		Humidity:          humidity,
		MoistureContent:   moistureContent,
		StorageConditions: storageConditions,
	})
}

func (s *service) Read(ctx context.Context, subjectID uint64) (Reading, error) {
	return s.repo.Get(ctx, subjectID)
}
