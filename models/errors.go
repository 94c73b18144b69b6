package models

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery means the submitted identifier was empty after trimming.
// It is a user-facing warning, not a system failure.
var ErrEmptyQuery = errors.New("empty identifier")

// ErrStudentNotFound means the normalized identifier matched no roster row.
var ErrStudentNotFound = errors.New("student not found")

// MissingColumnError reports a table that was fetched successfully but is
// missing a required column.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("table %s is missing required column %s", e.Table, e.Column)
}

// DataSourceError wraps any failure to read or shape one of the three
// tables. It aborts the whole query; the handler surfaces the wrapped
// detail for operators.
type DataSourceError struct {
	Table string
	Err   error
}

func (e *DataSourceError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("reading table %s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("reading data source: %v", e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// IsDataSourceError reports whether err is (or wraps) a data source
// failure, including schema validation failures.
func IsDataSourceError(err error) bool {
	var dsErr *DataSourceError
	var colErr *MissingColumnError
	return errors.As(err, &dsErr) || errors.As(err, &colErr)
}
