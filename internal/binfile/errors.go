/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package binfile

import "errors"

var (
	ErrNoPrimaryKey    = errors.New("no primary signing key")
	ErrKeySizeMismatch = errors.New("primary and secondary keys have different modulus sizes")
	ErrImageRejected   = errors.New("signature verification failed and enforcement is enabled")
)
