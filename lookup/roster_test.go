package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jqt_lookup_backend/datasource"
	"jqt_lookup_backend/models"
)

func rosterTable(rows ...[]string) *datasource.Table {
	cells := [][]string{{"身分證字號", "學員姓名", "班別", "剩餘堂數"}}
	cells = append(cells, rows...)
	return datasource.NewTable("學員總表", cells)
}

func TestFindStudent(t *testing.T) {
	roster := rosterTable(
		[]string{"A123456789", "王小明", "籃球初級", "8.0"},
		[]string{"B987654321", "李小華", "籃球進階", "尚未開課"},
	)

	for _, key := range []string{"A123456789", NormalizeID("a123456789"), NormalizeID(" A123456789 ")} {
		entry, err := FindStudent(roster, key)
		require.NoError(t, err)
		assert.Equal(t, "王小明", entry.Name)
		assert.Equal(t, "籃球初級", entry.ClassLabel)
		assert.Equal(t, "8.0", entry.RemainingLessons)
	}
}

func TestFindStudentNotFound(t *testing.T) {
	roster := rosterTable([]string{"A123456789", "王小明", "籃球初級", "8.0"})

	_, err := FindStudent(roster, "C111222333")
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
}

func TestFindStudentDuplicateFirstWins(t *testing.T) {
	roster := rosterTable(
		[]string{"A123456789", "王小明", "籃球初級", "8.0"},
		[]string{"a123456789", "王大明", "籃球進階", "3.0"},
	)

	entry, err := FindStudent(roster, "A123456789")
	require.NoError(t, err)
	assert.Equal(t, "王小明", entry.Name)
}

func TestFindStudentNormalizesRosterCells(t *testing.T) {
	roster := rosterTable([]string{" a123456789 ", "王小明", "籃球初級", "8.0"})

	entry, err := FindStudent(roster, "A123456789")
	require.NoError(t, err)
	assert.Equal(t, "王小明", entry.Name)
}
