package lookup

import (
	"strconv"
	"strings"
)

// NormalizeID trims surrounding whitespace and uppercases an identifier.
// It is applied to the submitted query and to every roster/attendance cell
// at comparison time, so "a123456789 " and "A123456789" are the same key.
func NormalizeID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeRemainingLessons turns "8.0" into "8" while passing placeholder
// text like "尚未開課" through unchanged. The sheet stores counts as floats
// but guardians should never see a decimal point. This never fails.
func NormalizeRemainingLessons(raw string) string {
	trimmed := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatInt(int64(f), 10)
}
