package lookup

import (
	"log"

	"jqt_lookup_backend/datasource"
	"jqt_lookup_backend/models"
)

// FindStudent selects the roster row whose normalized identifier equals
// key. With duplicate identifiers the first row in table order wins,
// deterministically; the duplicates are logged for the operator to clean
// up but the query is still answered.
func FindStudent(roster *datasource.Table, key string) (*models.RosterEntry, error) {
	matched := -1
	count := 0
	for i := 0; i < roster.Len(); i++ {
		if NormalizeID(roster.Get(i, datasource.ColStudentID)) != key {
			continue
		}
		if matched < 0 {
			matched = i
		}
		count++
	}
	if matched < 0 {
		return nil, models.ErrStudentNotFound
	}
	if count > 1 {
		log.Printf("roster has %d rows for identifier %s; using the first", count, key)
	}
	return &models.RosterEntry{
		ID:               roster.Get(matched, datasource.ColStudentID),
		Name:             roster.Get(matched, datasource.ColStudentName),
		ClassLabel:       roster.Get(matched, datasource.ColClassLabel),
		RemainingLessons: roster.Get(matched, datasource.ColRemainingLessons),
	}, nil
}
