package datasource

import (
	"context"
	"os"

	"github.com/xuri/excelize/v2"

	"jqt_lookup_backend/models"
)

// XLSXSource reads the three worksheets from one Excel workbook, for camps
// that keep the tables in a shared .xlsx instead of Google Sheets. The
// workbook is reopened on every fetch so edits show up immediately.
type XLSXSource struct {
	path        string
	roster      string
	attendance  string
	teachingLog string
}

func NewXLSXSource(path, roster, attendance, teachingLog string) *XLSXSource {
	return &XLSXSource{
		path:        path,
		roster:      roster,
		attendance:  attendance,
		teachingLog: teachingLog,
	}
}

func (s *XLSXSource) Fetch(ctx context.Context) (*Snapshot, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &models.DataSourceError{Err: err}
	}
	defer f.Close()

	roster, err := sheetToTable(f, s.roster)
	if err != nil {
		return nil, err
	}
	attendance, err := sheetToTable(f, s.attendance)
	if err != nil {
		return nil, err
	}
	teachingLog, err := sheetToTable(f, s.teachingLog)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Roster: roster, Attendance: attendance, TeachingLog: teachingLog}, nil
}

func sheetToTable(f *excelize.File, sheet string) (*Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &models.DataSourceError{Table: sheet, Err: err}
	}
	return NewTable(sheet, rows), nil
}

func (s *XLSXSource) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return &models.DataSourceError{Err: err}
	}
	return nil
}
