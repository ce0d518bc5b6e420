// Package sqlerr translates database driver errors into API errors.
//
// It reads the SQLSTATE codes reported by PostgreSQL through pgx and turns
// them into *errs.HTTPError values with friendly messages, e.g. an unknown
// item id in a point registration (foreign key violation on point_items)
// becomes a 400 "The referenced item does not exist".
package sqlerr

import "fmt"

// Code is the normalized category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	StringDataTooLong   Code = "string_data_right_truncation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	InvalidTextValue    Code = "invalid_text_representation"
	SerializationFailed Code = "serialization_failure"
	DeadlockDetected    Code = "deadlock_detected"
	TooManyConnections  Code = "too_many_connections"
)

// MapCode maps a PostgreSQL SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22001":
		return StringDataTooLong
	case "22003":
		return NumericOutOfRange
	case "22P02":
		return InvalidTextValue
	case "40001":
		return SerializationFailed
	case "40P01":
		return DeadlockDetected
	case "53300":
		return TooManyConnections
	default:
		return Other
	}
}

// Severity is the normalized PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the raw severity string, defaulting to SeverityError.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// Error is a driver error reduced to the fields the API cares about.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (pe *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", pe.Severity, pe.Message, pe.DatabaseCode)
}

// Unwrap exposes the original *pgconn.PgError.
func (pe *Error) Unwrap() error {
	return pe.driverErr
}
