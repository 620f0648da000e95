/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package tool glues the image format core to configuration, key files and
// the local audit trail. It is what the CLI shell talks to.
package tool

import (
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/ConnorHowell/VW-Flash/internal/binfile"
	"github.com/ConnorHowell/VW-Flash/internal/config"
	"github.com/ConnorHowell/VW-Flash/internal/domain/model"
	"github.com/ConnorHowell/VW-Flash/internal/domain/service"
	"github.com/ConnorHowell/VW-Flash/internal/infra/sqlite"
	"github.com/ConnorHowell/VW-Flash/internal/signing"
)

type Tool struct {
	cfg     config.Config
	parser  *binfile.Parser // built lazily, only verification needs the anchor
	records service.ImageRecordRepository
	db      *sql.DB
	logger  *log.Logger
	ctx     context.Context
}

// New opens the audit database and prepares the tool. The trust anchor named
// by cfg is loaded on first verification, so signing works without it.
func New(cfg config.Config) (*Tool, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	ctx := context.Background()
	db, err := sqlite.InitDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Tool{
		cfg:     cfg,
		records: sqlite.NewImageRecordRepository(db),
		db:      db,
		logger:  logger,
		ctx:     ctx,
	}, nil
}

func (t *Tool) ensureParser() (*binfile.Parser, error) {
	if t.parser != nil {
		return t.parser, nil
	}
	anchor, err := signing.ReadPublicKeyFile(t.cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("load trust anchor: %w", err)
	}
	t.parser = binfile.NewParser(anchor, t.cfg.EnforceSignature, t.logger)
	return t.parser, nil
}

// SignFile composes a signed image from the payload at inPath and writes it
// to outPath. An empty outPath derives the output name from the input
// (tune.bin -> tune.signed.bin). Returns the path written.
func (t *Tool) SignFile(inPath, outPath, boxcode, notes, primaryKeyPath, secondaryKeyPath string) (string, error) {
	payload, err := os.ReadFile(inPath)
	if err != nil {
		return "", fmt.Errorf("read payload %s: %w", inPath, err)
	}

	primary, err := signing.ReadPrivateKeyFile(primaryKeyPath)
	if err != nil {
		return "", err
	}
	var secondary *rsa.PrivateKey
	if secondaryKeyPath != "" {
		if secondary, err = signing.ReadPrivateKeyFile(secondaryKeyPath); err != nil {
			return "", err
		}
	}

	if outPath == "" {
		outPath = signedName(inPath)
	}
	if err := binfile.ComposeAndSave(outPath, payload, boxcode, notes, primary, secondary); err != nil {
		return "", err
	}
	t.logger.Printf("Signed %s (%d bytes) to %s", inPath, len(payload), outPath)

	t.record(model.ActionSign, outPath, boxcode, payload, binfile.Metadata{Boxcode: boxcode, Notes: notes})
	return outPath, nil
}

// VerifyFile loads the image at path, strips and verifies its trailer, and
// returns the raw payload with the verification report. In enforce mode an
// unauthentic trailer surfaces as binfile.ErrImageRejected; the payload and
// report are still returned alongside it.
func (t *Tool) VerifyFile(path, secondaryKeyPath string) ([]byte, *binfile.Report, error) {
	parser, err := t.ensureParser()
	if err != nil {
		return nil, nil, err
	}

	var secondary *rsa.PublicKey
	if secondaryKeyPath != "" {
		if secondary, err = signing.ReadPublicKeyFile(secondaryKeyPath); err != nil {
			return nil, nil, err
		}
	}

	payload, report, err := parser.LoadAndVerify(path, secondary)
	if report != nil {
		t.record(model.ActionVerify, path, report.Metadata.Boxcode, payload, report)
	}
	return payload, report, err
}

// History returns up to limit audit records, newest first.
func (t *Tool) History(limit int) ([]*model.ImageRecord, error) {
	return t.records.ListRecent(t.ctx, limit)
}

// Close closes the database connection.
func (t *Tool) Close() error {
	if t.db != nil {
		return sqlite.CloseDB(t.db)
	}
	return nil
}

// record stores one operation in the audit trail. Failures are logged, not
// returned: the audit trail never blocks the signing path.
func (t *Tool) record(action, path, boxcode string, payload []byte, detail any) {
	report, err := cbor.Marshal(detail)
	if err != nil {
		t.logger.Printf("failed to encode audit report: %v", err)
		return
	}

	digest := sha256.Sum256(payload)
	rec := &model.ImageRecord{
		Path:      path,
		Boxcode:   boxcode,
		Digest:    digest[:],
		Action:    action,
		Report:    report,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := t.records.Create(t.ctx, rec); err != nil {
		t.logger.Printf("failed to store audit record: %v", err)
	}
}

func signedName(inPath string) string {
	if base, ok := strings.CutSuffix(inPath, ".bin"); ok {
		return base + ".signed.bin"
	}
	return inPath + ".signed.bin"
}
