/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package signing wraps the RSASSA-PKCS1-v1.5 over SHA-256 primitive used to
// authenticate firmware images, plus the key handling around it.
package signing

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// Sign computes the SHA-256 digest of content and produces a PKCS#1 v1.5
// signature over it. The result is key.Size() bytes and deterministic for a
// given (content, key) pair.
func Sign(content []byte, key *rsa.PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: private key is nil", ErrSigning)
	}

	digest := sha256.Sum256(content)
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return sig, nil
}
