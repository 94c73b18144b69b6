package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jqt_lookup_backend/models"
)

func writeCSVFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"roster.csv":       "身分證字號,學員姓名,班別,剩餘堂數\nA123456789,王小明,籃球初級,8.0\n",
		"attendance.csv":   "身分證字號,日期,出席,個人評語\nA123456789,2024-05-01,1,進步很多\nA123456789,2024-05-08,0\n",
		"teaching_log.csv": "班別,日期,今日教學內容\n籃球初級,2024-05-01,運球基礎\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestCSVDirSourceFetch(t *testing.T) {
	src := NewCSVDirSource(writeCSVFixtures(t))

	snap, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.NoError(t, snap.Validate())

	assert.Equal(t, 1, snap.Roster.Len())
	assert.Equal(t, "王小明", snap.Roster.Get(0, ColStudentName))

	// second attendance row is ragged: no personal comment cell
	require.Equal(t, 2, snap.Attendance.Len())
	assert.Equal(t, "進步很多", snap.Attendance.Get(0, ColPersonalComment))
	assert.Equal(t, "", snap.Attendance.Get(1, ColPersonalComment))

	assert.Equal(t, "運球基礎", snap.TeachingLog.Get(0, ColTeachingContent))
}

func TestCSVDirSourceMissingFile(t *testing.T) {
	dir := writeCSVFixtures(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "teaching_log.csv")))

	src := NewCSVDirSource(dir)
	_, err := src.Fetch(context.Background())
	var dsErr *models.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "teaching_log.csv", dsErr.Table)
}

func TestCSVDirSourcePing(t *testing.T) {
	src := NewCSVDirSource(writeCSVFixtures(t))
	assert.NoError(t, src.Ping(context.Background()))

	missing := NewCSVDirSource(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, missing.Ping(context.Background()))
}
