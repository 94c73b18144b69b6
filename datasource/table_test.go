package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jqt_lookup_backend/models"
)

func TestNewTableTrimsHeaderAndDropsBlankRows(t *testing.T) {
	table := NewTable("學員總表", [][]string{
		{" 身分證字號 ", "學員姓名\t"},
		{"A123456789", "王小明"},
		{"", "   "},
		{"B987654321", "李小華"},
	})

	assert.Equal(t, []string{"身分證字號", "學員姓名"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "A123456789", table.Get(0, "身分證字號"))
	assert.Equal(t, "李小華", table.Get(1, "學員姓名"))
}

func TestTableGetRaggedRow(t *testing.T) {
	table := NewTable("點名紀錄", [][]string{
		{"身分證字號", "日期", "出席", "個人評語"},
		{"A123456789", "2024-05-01"}, // sheet export cut the trailing cells
	})

	assert.Equal(t, "2024-05-01", table.Get(0, "日期"))
	assert.Equal(t, "", table.Get(0, "出席"))
	assert.Equal(t, "", table.Get(0, "個人評語"))
	assert.Equal(t, "", table.Get(0, "不存在的欄位"))
	assert.Equal(t, "", table.Get(5, "日期"))
}

func TestTableRequireColumns(t *testing.T) {
	table := NewTable("教學日誌", [][]string{
		{"班別", "日期"},
	})

	assert.NoError(t, table.RequireColumns("班別", "日期"))

	err := table.RequireColumns("班別", "日期", "今日教學內容")
	var colErr *models.MissingColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "教學日誌", colErr.Table)
	assert.Equal(t, "今日教學內容", colErr.Column)
}

func TestSnapshotValidate(t *testing.T) {
	snap := &Snapshot{
		Roster: NewTable("學員總表", [][]string{
			{ColStudentID, ColStudentName, ColClassLabel, ColRemainingLessons},
		}),
		Attendance: NewTable("點名紀錄", [][]string{
			// personal comment column absent on purpose: it is optional
			{ColStudentID, ColDate, ColAttendance},
		}),
		TeachingLog: NewTable("教學日誌", [][]string{
			{ColClassLabel, ColDate, ColTeachingContent},
		}),
	}
	assert.NoError(t, snap.Validate())

	snap.Roster = NewTable("學員總表", [][]string{
		{ColStudentID, ColStudentName, ColClassLabel},
	})
	err := snap.Validate()
	var colErr *models.MissingColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, ColRemainingLessons, colErr.Column)
}

func TestNewTableEmpty(t *testing.T) {
	table := NewTable("學員總表", nil)
	assert.Equal(t, 0, table.Len())
	assert.False(t, table.HasColumn("身分證字號"))
}
