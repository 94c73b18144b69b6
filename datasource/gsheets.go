package datasource

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"jqt_lookup_backend/models"
)

// GoogleSheetsSource reads the three worksheets of one spreadsheet through
// the Sheets API. Every Fetch is a fresh batch read; the API returns
// formatted cell values, so numbers arrive as the strings users see.
type GoogleSheetsSource struct {
	svc           *sheets.Service
	spreadsheetID string
	roster        string
	attendance    string
	teachingLog   string
}

func NewGoogleSheetsSource(ctx context.Context, spreadsheetID, apiKey, credentialsFile, roster, attendance, teachingLog string) (*GoogleSheetsSource, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required for the gsheets data source")
	}

	var opts []option.ClientOption
	switch {
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	case apiKey != "":
		opts = append(opts, option.WithAPIKey(apiKey))
	default:
		return nil, fmt.Errorf("either GOOGLE_API_KEY or GOOGLE_CREDENTIALS_FILE must be set")
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	return &GoogleSheetsSource{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		roster:        roster,
		attendance:    attendance,
		teachingLog:   teachingLog,
	}, nil
}

func (s *GoogleSheetsSource) Fetch(ctx context.Context) (*Snapshot, error) {
	resp, err := s.svc.Spreadsheets.Values.
		BatchGet(s.spreadsheetID).
		Ranges(s.roster, s.attendance, s.teachingLog).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &models.DataSourceError{Err: err}
	}
	if len(resp.ValueRanges) != 3 {
		return nil, &models.DataSourceError{Err: fmt.Errorf("expected 3 value ranges, got %d", len(resp.ValueRanges))}
	}

	return &Snapshot{
		Roster:      valueRangeToTable(s.roster, resp.ValueRanges[0]),
		Attendance:  valueRangeToTable(s.attendance, resp.ValueRanges[1]),
		TeachingLog: valueRangeToTable(s.teachingLog, resp.ValueRanges[2]),
	}, nil
}

func (s *GoogleSheetsSource) Ping(ctx context.Context) error {
	_, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return &models.DataSourceError{Err: err}
	}
	return nil
}

func valueRangeToTable(name string, vr *sheets.ValueRange) *Table {
	cells := make([][]string, 0, len(vr.Values))
	for _, row := range vr.Values {
		cols := make([]string, len(row))
		for i, v := range row {
			cols[i] = fmt.Sprint(v)
		}
		cells = append(cells, cols)
	}
	return NewTable(name, cells)
}
