// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-attach-keeper/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func sampleRecord() models.AttachmentRecord {
	return models.AttachmentRecord{
		ID: "0190c3a4-1111-7000-8000-000000000001",
		Meta: models.AttachmentMeta{
			FileName:          "passport.pdf",
			ContentType:       "application/pdf",
			Size:              1024,
			EncryptedSize:     1052,
			Checksum:          strings.Repeat("ab", 32),
			ChecksumEncrypted: strings.Repeat("cd", 32),
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func Test_buildInsertAttachmentQuery_SQLContainsParts(t *testing.T) {
	record := sampleRecord()

	query, args, err := buildInsertAttachmentQuery(dollarBuilder, record)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into attachments")
	for _, c := range attachmentColumns {
		require.Contains(t, q, c)
	}

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$8")

	require.Len(t, args, 8)
	assert.Equal(t, record.ID, args[0])
	assert.Equal(t, record.Meta.FileName, args[1])
	assert.Equal(t, record.CreatedAt, args[7])
}

func Test_buildInsertAttachmentQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildInsertAttachmentQuery(questionBuilder, sampleRecord())
	require.NoError(t, err)

	assert.NotContains(t, query, "$1")
	assert.Equal(t, 8, strings.Count(query, "?"))
	require.Len(t, args, 8)
}

func Test_buildSelectAttachmentQuery(t *testing.T) {
	query, args, err := buildSelectAttachmentQuery(dollarBuilder, "some-id")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from attachments")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")

	for _, c := range attachmentColumns {
		require.Contains(t, q, c)
	}

	require.Len(t, args, 1)
	assert.Equal(t, "some-id", args[0])
}

func Test_buildSelectAllAttachmentsQuery(t *testing.T) {
	query, args, err := buildSelectAllAttachmentsQuery(dollarBuilder)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from attachments")
	require.Contains(t, q, "order by created_at")
	assert.Empty(t, args)
}

func Test_buildDeleteAttachmentQuery(t *testing.T) {
	query, args, err := buildDeleteAttachmentQuery(dollarBuilder, "gone-id")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from attachments")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	assert.Equal(t, "gone-id", args[0])
}
