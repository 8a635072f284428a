package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAttachmentNotFound is returned when a query or delete targets an
	// attachment ID that does not exist.
	ErrAttachmentNotFound = errors.New("attachment was not found")

	// ErrAttachmentNotSaved is returned when an INSERT completes without
	// error but the number of affected rows is zero, indicating that no
	// record was actually persisted.
	ErrAttachmentNotSaved = errors.New("attachment was not saved")

	// ErrDuplicateAttachmentID is returned when an INSERT violates the
	// primary-key constraint on the attachment ID.
	ErrDuplicateAttachmentID = errors.New("attachment id already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan attachment row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan attachment rows")
)
