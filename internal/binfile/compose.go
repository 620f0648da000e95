/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package binfile

import (
	"crypto/rsa"

	"github.com/ConnorHowell/VW-Flash/internal/signing"
)

// Compose appends an authenticity trailer to payload and returns the signed
// image as a new buffer. Both signatures cover payload plus metadata and
// nothing else, so either one can be checked without the other being present.
// When secondary is nil the second slot mirrors the primary signature,
// signalling that there is no independent second signer.
func Compose(payload []byte, boxcode, notes string, primary, secondary *rsa.PrivateKey) ([]byte, error) {
	if primary == nil {
		return nil, ErrNoPrimaryKey
	}
	if secondary != nil && secondary.Size() != primary.Size() {
		return nil, ErrKeySizeMismatch
	}

	metadata := EncodeMetadata(boxcode, notes)
	signed := make([]byte, 0, len(payload)+MetadataSize+2*primary.Size())
	signed = append(signed, payload...)
	signed = append(signed, metadata...)

	sig1, err := signing.Sign(signed, primary)
	if err != nil {
		return nil, err
	}
	sig2 := sig1
	if secondary != nil {
		if sig2, err = signing.Sign(signed, secondary); err != nil {
			return nil, err
		}
	}

	image := append(signed, sig1...)
	return append(image, sig2...), nil
}
