package models

// AttendanceRecord is one row of the attendance log (點名紀錄).
// Marker is the raw cell value; only "1" and "1.0" count as present.
type AttendanceRecord struct {
	StudentID       string `json:"student_id"`
	Date            string `json:"date"`
	Marker          string `json:"marker"`
	PersonalComment string `json:"personal_comment"`
}

// TeachingLogEntry is one row of the teaching log (教學日誌), shared by
// every student in the class.
type TeachingLogEntry struct {
	ClassLabel string `json:"class_label"`
	Date       string `json:"date"`
	Content    string `json:"content"`
}

// ReconciledRecord is the per-student, per-date result of joining
// attendance against the class teaching log. It is derived per query and
// never persisted.
type ReconciledRecord struct {
	Date            string `json:"date"`
	Attended        bool   `json:"attended"`
	Content         string `json:"content"`
	PersonalComment string `json:"personal_comment,omitempty"`
}
