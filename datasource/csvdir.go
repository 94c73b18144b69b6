package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"jqt_lookup_backend/models"
)

// CSVDirSource reads the three tables from a directory of CSV exports.
// Mostly used for local runs and tests.
type CSVDirSource struct {
	dir string
}

const (
	rosterFile      = "roster.csv"
	attendanceFile  = "attendance.csv"
	teachingLogFile = "teaching_log.csv"
)

func NewCSVDirSource(dir string) *CSVDirSource {
	return &CSVDirSource{dir: dir}
}

func (s *CSVDirSource) Fetch(ctx context.Context) (*Snapshot, error) {
	roster, err := s.readTable(rosterFile)
	if err != nil {
		return nil, err
	}
	attendance, err := s.readTable(attendanceFile)
	if err != nil {
		return nil, err
	}
	teachingLog, err := s.readTable(teachingLogFile)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Roster: roster, Attendance: attendance, TeachingLog: teachingLog}, nil
}

func (s *CSVDirSource) readTable(filename string) (*Table, error) {
	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, &models.DataSourceError{Table: filename, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // sheet exports are often ragged
	cells, err := r.ReadAll()
	if err != nil {
		return nil, &models.DataSourceError{Table: filename, Err: err}
	}
	return NewTable(filename, cells), nil
}

func (s *CSVDirSource) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return &models.DataSourceError{Err: err}
	}
	if !info.IsDir() {
		return &models.DataSourceError{Err: fmt.Errorf("%s is not a directory", s.dir)}
	}
	return nil
}
