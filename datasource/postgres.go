package datasource

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"jqt_lookup_backend/models"
)

// PostgresSource serves the three tables from a Postgres mirror of the
// spreadsheet. Column values are stored as text, same as the sheet; rows
// are returned in insertion order so first-occurrence semantics match.
type PostgresSource struct {
	db *sql.DB
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

func NewPostgresSource(cfg PostgresConfig) (*PostgresSource, error) {
	psqlInfo := fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresSource{db: db}, nil
}

func (s *PostgresSource) Fetch(ctx context.Context) (*Snapshot, error) {
	roster, err := s.queryTable(ctx, "roster",
		[]string{ColStudentID, ColStudentName, ColClassLabel, ColRemainingLessons},
		`SELECT national_id, student_name, class_label, remaining_lessons
		 FROM roster ORDER BY row_id`)
	if err != nil {
		return nil, err
	}

	attendance, err := s.queryTable(ctx, "attendance",
		[]string{ColStudentID, ColDate, ColAttendance, ColPersonalComment},
		`SELECT national_id, session_date, marker, COALESCE(personal_comment, '')
		 FROM attendance ORDER BY row_id`)
	if err != nil {
		return nil, err
	}

	teachingLog, err := s.queryTable(ctx, "teaching_log",
		[]string{ColClassLabel, ColDate, ColTeachingContent},
		`SELECT class_label, session_date, COALESCE(content, '')
		 FROM teaching_log ORDER BY row_id`)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Roster: roster, Attendance: attendance, TeachingLog: teachingLog}, nil
}

func (s *PostgresSource) queryTable(ctx context.Context, name string, header []string, query string) (*Table, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &models.DataSourceError{Table: name, Err: err}
	}
	defer rows.Close()

	cells := [][]string{header}
	dest := make([]string, len(header))
	ptrs := make([]any, len(header))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &models.DataSourceError{Table: name, Err: err}
		}
		row := make([]string, len(dest))
		copy(row, dest)
		cells = append(cells, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.DataSourceError{Table: name, Err: err}
	}
	return NewTable(name, cells), nil
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &models.DataSourceError{Err: err}
	}
	return nil
}

// Close releases the connection pool. Only the Postgres backend holds one.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
