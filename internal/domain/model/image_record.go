/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import "time"

const (
	ActionSign   = "sign"
	ActionVerify = "verify"
)

// ImageRecord is one sign or verify operation stored in the audit DB.
type ImageRecord struct {
	ID      int64
	Path    string
	Boxcode string
	// Digest is the SHA-256 of the raw payload, without any trailer.
	Digest []byte
	Action string
	// Report holds the CBOR-encoded operation detail: the verification
	// report for verify actions, the embedded metadata for sign actions.
	Report    []byte
	CreatedAt time.Time
}
