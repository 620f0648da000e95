/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package service

import (
	"context"

	"github.com/ConnorHowell/VW-Flash/internal/domain/model"
)

// ImageRecordRepository defines the interface for audit trail persistence.
type ImageRecordRepository interface {
	Create(ctx context.Context, rec *model.ImageRecord) (int64, error)
	FindByDigest(ctx context.Context, digest []byte) ([]*model.ImageRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*model.ImageRecord, error)
}
