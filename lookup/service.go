package lookup

import (
	"context"

	"jqt_lookup_backend/datasource"
	"jqt_lookup_backend/models"
)

// Service runs one identifier query end to end: normalize, fresh read of
// the three tables, roster lookup, timeline reconciliation. Every call
// re-fetches; there is no cache and no state shared between queries.
type Service struct {
	src datasource.Source
}

func NewService(src datasource.Source) *Service {
	return &Service{src: src}
}

// Lookup answers one query. Errors are the models taxonomy: ErrEmptyQuery
// for a blank submission, ErrStudentNotFound for an unknown identifier,
// and DataSourceError/MissingColumnError when the tables cannot be read
// or are missing columns.
func (s *Service) Lookup(ctx context.Context, rawID string) (*models.LookupResult, error) {
	key := NormalizeID(rawID)
	if key == "" {
		return nil, models.ErrEmptyQuery
	}

	snap, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	student, err := FindStudent(snap.Roster, key)
	if err != nil {
		return nil, err
	}

	remaining := NormalizeRemainingLessons(student.RemainingLessons)
	return &models.LookupResult{
		Name:             student.Name,
		ClassLabel:       student.ClassLabel,
		RemainingLessons: remaining,
		RemainingDisplay: remaining + " 堂",
		Records:          ReconcileTimeline(student.ID, student.ClassLabel, snap.Attendance, snap.TeachingLog),
	}, nil
}
