/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sqlite

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/ConnorHowell/VW-Flash/internal/domain/model"
)

func TestImageRecord_CreateList_OK(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	defer CloseDB(db)

	now := time.Now().UTC().Truncate(time.Second)
	repo := NewImageRecordRepository(db)

	r1 := &model.ImageRecord{
		Path:      "tune.signed.bin",
		Boxcode:   "8V0906259K",
		Digest:    []byte("digest-1"),
		Action:    model.ActionSign,
		Report:    []byte{0xa1},
		CreatedAt: now,
	}
	r2 := &model.ImageRecord{
		Path:      "tune.signed.bin",
		Boxcode:   "8V0906259K",
		Digest:    []byte("digest-1"),
		Action:    model.ActionVerify,
		Report:    []byte{0xa2},
		CreatedAt: now.Add(1 * time.Minute),
	}

	id1, err := repo.Create(ctx, r1)
	if err != nil {
		t.Fatalf("Create r1 error: %v", err)
	}
	r1.ID = id1

	id2, err := repo.Create(ctx, r2)
	if err != nil {
		t.Fatalf("Create r2 error: %v", err)
	}
	r2.ID = id2

	got, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != r2.ID {
		t.Fatalf("expected newest first: want id %d got %d", r2.ID, got[0].ID)
	}
	if got[0].Action != model.ActionVerify {
		t.Fatalf("action mismatch: want %q got %q", model.ActionVerify, got[0].Action)
	}

	got, err = repo.ListRecent(ctx, 1)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected limit to apply, got %d records", len(got))
	}
}

func TestImageRecord_FindByDigest_OK(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	defer CloseDB(db)

	now := time.Now().UTC().Truncate(time.Second)
	repo := NewImageRecordRepository(db)

	digest := []byte("payload-digest")
	rec := &model.ImageRecord{
		Path:      "stock.bin",
		Boxcode:   "04E906016HA",
		Digest:    digest,
		Action:    model.ActionVerify,
		Report:    []byte{0xa0},
		CreatedAt: now,
	}
	if _, err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.FindByDigest(ctx, digest)
	if err != nil {
		t.Fatalf("FindByDigest error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if !bytes.Equal(got[0].Digest, digest) {
		t.Fatalf("digest mismatch")
	}

	got, err = repo.FindByDigest(ctx, []byte("unknown"))
	if err != nil {
		t.Fatalf("FindByDigest error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}
