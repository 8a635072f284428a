package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL builds a DB around an existing *sql.DB (for tests).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		driver:             "postgres",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) AttachmentRepository {
	t.Helper()
	return NewAttachmentRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var attachmentTestColumns = []string{
	"id", "file_name", "content_type", "size", "encrypted_size",
	"checksum", "checksum_encrypted", "created_at",
}

func testRecord(id string) models.AttachmentRecord {
	return models.AttachmentRecord{
		ID: id,
		Meta: models.AttachmentMeta{
			FileName:          "scan.png",
			ContentType:       "image/png",
			Size:              2048,
			EncryptedSize:     2076,
			Checksum:          "aa11",
			ChecksumEncrypted: "bb22",
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func recordRows(records ...models.AttachmentRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(attachmentTestColumns)
	for _, r := range records {
		rows.AddRow(
			r.ID, r.Meta.FileName, r.Meta.ContentType, r.Meta.Size,
			r.Meta.EncryptedSize, r.Meta.Checksum, r.Meta.ChecksumEncrypted,
			r.CreatedAt,
		)
	}
	return rows
}

func TestSaveAttachment_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	record := testRecord("id-1")

	query, args, err := buildInsertAttachmentQuery(dollarBuilder, record)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(toDriverValues(args)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveAttachment(testContext(), record)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttachment_ZeroRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	record := testRecord("id-2")

	query, args, err := buildInsertAttachmentQuery(dollarBuilder, record)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(toDriverValues(args)...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SaveAttachment(testContext(), record)
	assert.ErrorIs(t, err, ErrAttachmentNotSaved)
}

func TestSaveAttachment_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	record := testRecord("id-3")

	query, args, err := buildInsertAttachmentQuery(dollarBuilder, record)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(toDriverValues(args)...).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.SaveAttachment(testContext(), record)
	assert.ErrorIs(t, err, ErrDuplicateAttachmentID)
}

func TestSaveAttachment_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	record := testRecord("id-4")

	query, args, err := buildInsertAttachmentQuery(dollarBuilder, record)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(toDriverValues(args)...).
		WillReturnError(errors.New("connection reset"))

	err = repo.SaveAttachment(testContext(), record)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestGetAttachment_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	record := testRecord("id-5")

	query, _, err := buildSelectAttachmentQuery(dollarBuilder, record.ID)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(record.ID).
		WillReturnRows(recordRows(record))

	got, err := repo.GetAttachment(testContext(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGetAttachment_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	query, _, err := buildSelectAttachmentQuery(dollarBuilder, "missing")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnRows(recordRows())

	_, err = repo.GetAttachment(testContext(), "missing")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

func TestGetAllAttachments_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	first := testRecord("id-6")
	second := testRecord("id-7")

	query, _, err := buildSelectAllAttachmentsQuery(dollarBuilder)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(recordRows(first, second))

	got, err := repo.GetAllAttachments(testContext())
	require.NoError(t, err)
	assert.Equal(t, []models.AttachmentRecord{first, second}, got)
}

func TestGetAllAttachments_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	query, _, err := buildSelectAllAttachmentsQuery(dollarBuilder)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(recordRows())

	got, err := repo.GetAllAttachments(testContext())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAllAttachments_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	query, _, err := buildSelectAllAttachmentsQuery(dollarBuilder)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnError(errors.New("boom"))

	_, err = repo.GetAllAttachments(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestDeleteAttachment_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	query, _, err := buildDeleteAttachmentQuery(dollarBuilder, "id-8")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("id-8").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteAttachment(testContext(), "id-8"))
}

func TestDeleteAttachment_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	query, _, err := buildDeleteAttachmentQuery(dollarBuilder, "missing")
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteAttachment(testContext(), "missing")
	assert.ErrorIs(t, err, ErrAttachmentNotFound)
}

// toDriverValues converts builder args to sqlmock argument matchers.
func toDriverValues(args []any) []driver.Value {
	out := make([]driver.Value, 0, len(args))
	for _, a := range args {
		out = append(out, a)
	}
	return out
}
