package lookup

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"jqt_lookup_backend/datasource"
	"jqt_lookup_backend/models"
)

// DefaultContent is shown when the class has no teaching-log entry for an
// attended date.
const DefaultContent = "教練尚未填寫日誌"

// attendedMarkers are the raw attendance cell values that count as
// present. Everything else, including "0" and blank, means absent.
var attendedMarkers = map[string]bool{
	"1":   true,
	"1.0": true,
}

type timelineRow struct {
	record models.ReconciledRecord
	when   time.Time
	dated  bool
}

// ReconcileTimeline joins one student's attendance against their class's
// teaching log and returns the timeline newest-first.
//
// Attendance rows are filtered by normalized identifier and deduplicated
// by date (first occurrence wins); log rows are filtered by exact class
// label and deduplicated the same way. The join is anchored on attendance:
// every surviving attendance row yields exactly one record, log-only dates
// never appear, and dates with no log entry fall back to DefaultContent.
// A row with a date no layout can parse still shows up; it just sorts
// after the dated rows, keeping its input position.
//
// An empty result is valid: it means the student exists but has no
// attendance history yet.
func ReconcileTimeline(studentID, classLabel string, attendance, teachingLog *datasource.Table) []models.ReconciledRecord {
	key := NormalizeID(studentID)

	contentByDate := make(map[string]string)
	for i := 0; i < teachingLog.Len(); i++ {
		if teachingLog.Get(i, datasource.ColClassLabel) != classLabel {
			continue
		}
		date := teachingLog.Get(i, datasource.ColDate)
		if _, seen := contentByDate[date]; seen {
			continue
		}
		contentByDate[date] = teachingLog.Get(i, datasource.ColTeachingContent)
	}

	var rows []timelineRow
	seenDates := make(map[string]bool)
	for i := 0; i < attendance.Len(); i++ {
		if NormalizeID(attendance.Get(i, datasource.ColStudentID)) != key {
			continue
		}
		date := attendance.Get(i, datasource.ColDate)
		if seenDates[date] {
			continue
		}
		seenDates[date] = true

		content, logged := contentByDate[date]
		if !logged || content == "" {
			content = DefaultContent
		}

		row := timelineRow{
			record: models.ReconciledRecord{
				Date:            date,
				Attended:        attendedMarkers[attendance.Get(i, datasource.ColAttendance)],
				Content:         content,
				PersonalComment: attendance.Get(i, datasource.ColPersonalComment),
			},
		}
		if when, err := dateparse.ParseAny(date); err == nil {
			row.when = when
			row.dated = true
		}
		rows = append(rows, row)
	}

	// Newest first. Stable, so equal dates keep attendance input order and
	// undated rows trail in input order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].dated != rows[j].dated {
			return rows[i].dated
		}
		return rows[i].when.After(rows[j].when)
	})

	records := make([]models.ReconciledRecord, len(rows))
	for i, row := range rows {
		records[i] = row.record
	}
	return records
}
