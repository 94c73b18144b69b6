package config

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	ServerPort  string

	// DataSource picks the table backend: gsheets, postgres, csv or xlsx.
	DataSource string

	// Google Sheets backend
	SpreadsheetID         string
	GoogleAPIKey          string
	GoogleCredentialsFile string

	// Worksheet / table names shared by all backends
	RosterSheet      string
	AttendanceSheet  string
	TeachingLogSheet string

	// Postgres backend
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// CSV / XLSX backends
	CSVDir   string
	XLSXPath string
}

func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerPort:  getEnv("PORT", "8080"),

		DataSource: getEnv("DATA_SOURCE", "gsheets"),

		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		GoogleAPIKey:          getEnv("GOOGLE_API_KEY", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		RosterSheet:      getEnv("ROSTER_SHEET", "學員總表"),
		AttendanceSheet:  getEnv("ATTENDANCE_SHEET", "點名紀錄"),
		TeachingLogSheet: getEnv("TEACHING_LOG_SHEET", "教學日誌"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "jqt_lookup"),

		CSVDir:   getEnv("CSV_DIR", "./data"),
		XLSXPath: getEnv("XLSX_PATH", "./data/jqt.xlsx"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
