/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package signing

import "errors"

var (
	ErrKeyLoad = errors.New("cannot parse RSA key material")
	ErrSigning = errors.New("signing failed")
)
