package datasource

import (
	"context"
	"fmt"

	"jqt_lookup_backend/config"
)

// New builds the table backend named by cfg.DataSource.
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.DataSource {
	case "gsheets":
		return NewGoogleSheetsSource(ctx,
			cfg.SpreadsheetID, cfg.GoogleAPIKey, cfg.GoogleCredentialsFile,
			cfg.RosterSheet, cfg.AttendanceSheet, cfg.TeachingLogSheet)
	case "postgres":
		return NewPostgresSource(PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
		})
	case "csv":
		return NewCSVDirSource(cfg.CSVDir), nil
	case "xlsx":
		return NewXLSXSource(cfg.XLSXPath, cfg.RosterSheet, cfg.AttendanceSheet, cfg.TeachingLogSheet), nil
	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q (want gsheets, postgres, csv or xlsx)", cfg.DataSource)
	}
}
