package models

// RosterEntry is one row of the enrollment roster (學員總表).
// RemainingLessons is kept raw: the sheet mixes numbers like "8.0" with
// placeholder text like "尚未開課".
type RosterEntry struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ClassLabel       string `json:"class_label"`
	RemainingLessons string `json:"remaining_lessons"`
}
