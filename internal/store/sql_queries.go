package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-attach-keeper/models"
)

const attachmentsTable = "attachments"

var attachmentColumns = []string{
	"id",
	"file_name",
	"content_type",
	"size",
	"encrypted_size",
	"checksum",
	"checksum_encrypted",
	"created_at",
}

func buildInsertAttachmentQuery(b sq.StatementBuilderType, record models.AttachmentRecord) (string, []any, error) {
	query, args, err := b.
		Insert(attachmentsTable).
		Columns(attachmentColumns...).
		Values(
			record.ID,
			record.Meta.FileName,
			record.Meta.ContentType,
			record.Meta.Size,
			record.Meta.EncryptedSize,
			record.Meta.Checksum,
			record.Meta.ChecksumEncrypted,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAttachmentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Select(attachmentColumns...).
		From(attachmentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAllAttachmentsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(attachmentColumns...).
		From(attachmentsTable).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteAttachmentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Delete(attachmentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
