package models

// LookupResult is the full answer for one identifier query: the summary
// fields plus the reconciled timeline, newest first.
type LookupResult struct {
	Name             string             `json:"name"`
	ClassLabel       string             `json:"class_label"`
	RemainingLessons string             `json:"remaining_lessons"`
	RemainingDisplay string             `json:"remaining_display"`
	Records          []ReconciledRecord `json:"records"`
}
