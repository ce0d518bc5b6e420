package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode returns the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError reduces a raw *pgconn.PgError to an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode builds a machine code shaped <DOMAIN>_<ACTION>.
//
// For foreign keys the domain is the referenced entity taken from the
// constraint name (point_items_item_id_fkey -> ITEM), since the table that
// raised the error is the referencing one.
func generateErrorCode(sqlErr *Error) string {
	domain := strings.ToUpper(singular(sqlErr.TableName))
	if sqlErr.Code == ForeignKeyViolation {
		if column := extractColumnForForeignKey(sqlErr.ConstraintName); column != "" {
			domain = strings.ToUpper(strings.TrimSuffix(column, "_id"))
		}
	}
	if domain == "" {
		domain = "RECORD"
	}

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidTextValue, NumericOutOfRange, StringDataTooLong:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	column := sqlErr.ColumnName
	if sqlErr.Code == ForeignKeyViolation && column == "" {
		column = extractColumnForForeignKey(sqlErr.ConstraintName)
	}
	entityName := getEntityName(sqlErr.TableName, column)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", strings.ToLower(entityName))

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entityName))

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(extractColumnForCheck(sqlErr.ConstraintName)); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case InvalidTextValue, NumericOutOfRange, StringDataTooLong:
		return "One or more values are out of the accepted range"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singular table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	if tableName != "" {
		return humanizeText(singular(tableName))
	}
	return "record"
}

// singular drops a trailing "s"; good enough for points/items/point_items.
func singular(name string) string {
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		return name[:len(name)-1]
	}
	if strings.HasSuffix(name, "S") && len(name) > 1 {
		return name[:len(name)-1]
	}
	return name
}

// humanizeText turns "point_id" into "Point Id".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var (
	uniqueKeyPattern  = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	foreignKeyPattern = regexp.MustCompile(`^[a-z]+(?:_[a-z]+)*?_([a-z]+_id)_fkey$`)
	checkPattern      = regexp.MustCompile(`^[a-z]+_([a-z]+)_check$`)
)

// extractColumnForUniqueViolation supports "unique_<table>_<column>" and
// "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// extractColumnForForeignKey reads the column of PostgreSQL's default
// "<table>_<column>_fkey" naming, e.g. point_items_item_id_fkey -> item_id.
func extractColumnForForeignKey(constraintName string) string {
	if matches := foreignKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// extractColumnForCheck reads "<table>_<column>_check", e.g. points_uf_check -> uf.
func extractColumnForCheck(constraintName string) string {
	if matches := checkPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: constraint violations become 400s, anything else 500
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - everything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, InvalidTextValue, NumericOutOfRange, StringDataTooLong:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
