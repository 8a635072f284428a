package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-attach-keeper/internal/logger"
	"github.com/MKhiriev/go-attach-keeper/models"
)

// attachmentRepository is the SQL-backed implementation of
// [AttachmentRepository]. It executes all metadata operations against the
// "attachments" table using the embedded [*DB] connection; the per-driver
// statement builder on [*DB] picks the right placeholder format.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (attachment id, row counts, etc.).
type attachmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttachmentRepository constructs an [AttachmentRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewAttachmentRepository(db *DB, logger *logger.Logger) AttachmentRepository {
	return &attachmentRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveAttachment inserts one metadata record. A primary-key collision maps to
// [ErrDuplicateAttachmentID]; an insert that affects zero rows maps to
// [ErrAttachmentNotSaved].
func (r *attachmentRepository) SaveAttachment(ctx context.Context, record models.AttachmentRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAttachmentQuery(r.DB.builder, record)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.SaveAttachment").
			Str("attachment_id", record.ID).
			Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateAttachmentID, record.ID)
		}

		log.Err(err).
			Str("func", "attachmentRepository.SaveAttachment").
			Str("attachment_id", record.ID).
			Bool("retryable", r.DB.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert attachment record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return ErrAttachmentNotSaved
	}

	return nil
}

// GetAttachment retrieves one metadata record by its server-assigned ID.
func (r *attachmentRepository) GetAttachment(ctx context.Context, id string) (models.AttachmentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAttachmentQuery(r.DB.builder, id)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.GetAttachment").
			Str("attachment_id", id).
			Msg("failed to create query")
		return models.AttachmentRecord{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	record, err := scanAttachmentRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AttachmentRecord{}, fmt.Errorf("%w: %s", ErrAttachmentNotFound, id)
		}

		log.Err(err).
			Str("func", "attachmentRepository.GetAttachment").
			Str("attachment_id", id).
			Msg("failed to scan attachment row")
		return models.AttachmentRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// GetAllAttachments retrieves every stored metadata record ordered by upload
// time. Returns an empty slice when the table is empty.
func (r *attachmentRepository) GetAllAttachments(ctx context.Context) ([]models.AttachmentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllAttachmentsQuery(r.DB.builder)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.GetAllAttachments").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.GetAllAttachments").
			Msg("failed to execute query for getting all attachments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AttachmentRecord, 0, 50)

	for rows.Next() {
		record, scanErr := scanAttachmentRecord(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attachmentRepository.GetAllAttachments").
				Msg("failed to scan attachment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attachmentRepository.GetAllAttachments").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// DeleteAttachment removes one metadata record. Deleting a missing record
// returns [ErrAttachmentNotFound].
func (r *attachmentRepository) DeleteAttachment(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttachmentQuery(r.DB.builder, id)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.DeleteAttachment").
			Str("attachment_id", id).
			Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentRepository.DeleteAttachment").
			Str("attachment_id", id).
			Msg("failed to delete attachment record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrAttachmentNotFound, id)
	}

	return nil
}

func scanAttachmentRecord(scan func(dest ...any) error) (models.AttachmentRecord, error) {
	var record models.AttachmentRecord

	err := scan(
		&record.ID,
		&record.Meta.FileName,
		&record.Meta.ContentType,
		&record.Meta.Size,
		&record.Meta.EncryptedSize,
		&record.Meta.Checksum,
		&record.Meta.ChecksumEncrypted,
		&record.CreatedAt,
	)
	if err != nil {
		return models.AttachmentRecord{}, err
	}

	return record, nil
}
