/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ConnorHowell/VW-Flash/internal/domain/model"
)

// ImageRecordRepository handles audit trail persistence.
type ImageRecordRepository struct {
	db *sql.DB
}

func NewImageRecordRepository(db *sql.DB) *ImageRecordRepository {
	return &ImageRecordRepository{db: db}
}

// Create inserts a new audit record and returns the inserted id.
func (r *ImageRecordRepository) Create(ctx context.Context, rec *model.ImageRecord) (int64, error) {
	const q = `
		INSERT INTO image_records (path, boxcode, digest, action, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q, rec.Path, rec.Boxcode, rec.Digest, rec.Action, rec.Report, rec.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return id, nil
}

// FindByDigest returns all records for a payload digest, newest first.
func (r *ImageRecordRepository) FindByDigest(ctx context.Context, digest []byte) ([]*model.ImageRecord, error) {
	const q = `
		SELECT id, path, boxcode, digest, action, report, created_at
		FROM image_records
		WHERE digest = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, digest)
	if err != nil {
		return nil, fmt.Errorf("image record query: %w", err)
	}
	defer rows.Close()
	return scanImageRecords(rows)
}

// ListRecent returns up to limit records, newest first.
func (r *ImageRecordRepository) ListRecent(ctx context.Context, limit int) ([]*model.ImageRecord, error) {
	const q = `
		SELECT id, path, boxcode, digest, action, report, created_at
		FROM image_records
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("image record query: %w", err)
	}
	defer rows.Close()
	return scanImageRecords(rows)
}

func scanImageRecords(rows *sql.Rows) ([]*model.ImageRecord, error) {
	var records []*model.ImageRecord
	for rows.Next() {
		var rec model.ImageRecord
		if err := rows.Scan(&rec.ID, &rec.Path, &rec.Boxcode, &rec.Digest, &rec.Action, &rec.Report, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("image record scan: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("image record rows: %w", err)
	}
	return records, nil
}
