package datasource

import "context"

// Column names as they appear in the shared spreadsheet. Every backend
// presents its data under these headers so the lookup pipeline only knows
// one schema.
const (
	ColStudentID        = "身分證字號"
	ColStudentName      = "學員姓名"
	ColClassLabel       = "班別"
	ColRemainingLessons = "剩餘堂數"
	ColDate             = "日期"
	ColAttendance       = "出席"
	ColPersonalComment  = "個人評語"
	ColTeachingContent  = "今日教學內容"
)

// Snapshot holds one fresh read of the three tables. Snapshots are built
// per query and thrown away; nothing is cached between queries.
type Snapshot struct {
	Roster      *Table
	Attendance  *Table
	TeachingLog *Table
}

// Validate checks the expected schema once, right after a fetch, so a
// missing column fails fast with its name instead of surfacing as an empty
// cell deep inside the join. The personal-comment column is optional.
func (s *Snapshot) Validate() error {
	if err := s.Roster.RequireColumns(ColStudentID, ColStudentName, ColClassLabel, ColRemainingLessons); err != nil {
		return err
	}
	if err := s.Attendance.RequireColumns(ColStudentID, ColDate, ColAttendance); err != nil {
		return err
	}
	return s.TeachingLog.RequireColumns(ColClassLabel, ColDate, ColTeachingContent)
}

// Source supplies the three tables as a full fresh read per call.
type Source interface {
	Fetch(ctx context.Context) (*Snapshot, error)
	Ping(ctx context.Context) error
}
