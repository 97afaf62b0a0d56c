package litedb

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/orsinium-labs/enum"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

var (
	// ErrClosed is returned by every operation on a closed Database.
	ErrClosed = errors.New("database is closed")
	// ErrEmptyBatch is returned by AppendManyData when no rows are given.
	ErrEmptyBatch = errors.New("no rows to append")
	// ErrRowArity is returned by AppendManyData when a row does not have the
	// same number of values as the first one.
	ErrRowArity = errors.New("row has a different number of values than the first row")
)

// ErrorClass groups errors by their origin in the engine.
type ErrorClass enum.Member[string]

var (
	ErrorClassNone        = ErrorClass{Value: "none"}
	ErrorClassSyntax      = ErrorClass{Value: "syntax"}
	ErrorClassConstraint  = ErrorClass{Value: "constraint"}
	ErrorClassOperational = ErrorClass{Value: "operational"}
	ErrorClassMisuse      = ErrorClass{Value: "misuse"}
	ErrorClassUnknown     = ErrorClass{Value: "unknown"}

	ErrorClasses = enum.New(
		ErrorClassNone,
		ErrorClassSyntax,
		ErrorClassConstraint,
		ErrorClassOperational,
		ErrorClassMisuse,
		ErrorClassUnknown,
	)
)

// Classify reports the class of err. The error still carries the driver
// error so callers can inspect it with errors.As.
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorClassNone
	}

	if errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrRowArity) {
		return ErrorClassMisuse
	}

	var mattnErr sqlite3.Error
	if errors.As(err, &mattnErr) {
		return classifyEngineError(
			mattnErr.Code == sqlite3.ErrConstraint, mattnErr.Error(),
		)
	}

	var moderncErr *sqlite.Error
	if errors.As(err, &moderncErr) {
		return classifyEngineError(
			moderncErr.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT, moderncErr.Error(),
		)
	}

	return ErrorClassUnknown
}

// classifyEngineError splits engine errors. SQLite reports syntax problems
// with the generic SQLITE_ERROR code, so they are told apart by message.
func classifyEngineError(isConstraint bool, msg string) ErrorClass {
	if isConstraint {
		return ErrorClassConstraint
	}

	msg = strings.ToLower(msg)
	if strings.Contains(msg, "syntax error") || strings.Contains(msg, "incomplete input") {
		return ErrorClassSyntax
	}

	return ErrorClassOperational
}
