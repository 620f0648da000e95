/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package signing

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
)

// Verify reports whether sig is a valid PKCS#1 v1.5 signature by key over the
// SHA-256 digest of content. It is a total predicate: malformed signatures,
// key mismatches and structural errors all yield false, never an error.
func Verify(content, sig []byte, key *rsa.PublicKey) bool {
	if key == nil || len(sig) != key.Size() {
		return false
	}

	digest := sha256.Sum256(content)
	return rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], sig) == nil
}
