/*
 * Copyright (c) 2025 SECOM CO., LTD. All Rights reserved.
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package signing

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	return key
}

func TestSignVerify_RoundTrip(t *testing.T) {
	key := testKey(t)
	content := []byte("firmware payload with metadata")

	sig, err := Sign(content, key)
	require.NoError(t, err)
	assert.Len(t, sig, key.Size())
	assert.True(t, Verify(content, sig, &key.PublicKey))

	// PKCS#1 v1.5 is deterministic for a fixed key and content.
	sig2, err := Sign(content, key)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestSign_NilKey(t *testing.T) {
	_, err := Sign([]byte("content"), nil)
	assert.ErrorIs(t, err, ErrSigning)
}

func TestVerify_WrongKey(t *testing.T) {
	keyA := testKey(t)
	keyB := testKey(t)
	content := []byte("content")

	sig, err := Sign(content, keyA)
	require.NoError(t, err)
	assert.False(t, Verify(content, sig, &keyB.PublicKey))
}

func TestVerify_NeverPanicsOnGarbage(t *testing.T) {
	key := testKey(t)
	content := []byte("content")

	assert.False(t, Verify(content, nil, &key.PublicKey))
	assert.False(t, Verify(content, []byte{0x01, 0x02}, &key.PublicKey))
	assert.False(t, Verify(content, make([]byte, key.Size()), &key.PublicKey))
	assert.False(t, Verify(content, make([]byte, key.Size()), nil))

	sig, err := Sign(content, key)
	require.NoError(t, err)
	sig[0] ^= 0xff
	assert.False(t, Verify(content, sig, &key.PublicKey))
}

func TestParsePrivateKey_Encodings(t *testing.T) {
	key := testKey(t)

	// PKCS#1 PEM
	got, err := ParsePrivateKey(MarshalPrivateKeyPEM(key))
	require.NoError(t, err)
	assert.True(t, key.Equal(got))

	// PKCS#1 DER
	got, err = ParsePrivateKey(x509.MarshalPKCS1PrivateKey(key))
	require.NoError(t, err)
	assert.True(t, key.Equal(got))

	// PKCS#8 DER
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	got, err = ParsePrivateKey(der)
	require.NoError(t, err)
	assert.True(t, key.Equal(got))
}

func TestParsePublicKey_Encodings(t *testing.T) {
	key := testKey(t)

	pemBytes, err := MarshalPublicKeyPEM(&key.PublicKey)
	require.NoError(t, err)
	got, err := ParsePublicKey(pemBytes)
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))

	// PKCS#1 DER
	got, err = ParsePublicKey(x509.MarshalPKCS1PublicKey(&key.PublicKey))
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))

	// private key material yields the public half
	got, err = ParsePublicKey(MarshalPrivateKeyPEM(key))
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))
}

func TestParseKeys_Garbage(t *testing.T) {
	_, err := ParsePrivateKey([]byte("not a key"))
	assert.ErrorIs(t, err, ErrKeyLoad)

	_, err = ParsePublicKey([]byte("not a key"))
	assert.ErrorIs(t, err, ErrKeyLoad)

	_, err = ParsePublicKey(nil)
	assert.ErrorIs(t, err, ErrKeyLoad)
}

func TestReadKeyFiles(t *testing.T) {
	key := testKey(t)
	dir := t.TempDir()

	privPath := filepath.Join(dir, "test.key")
	pubPath := filepath.Join(dir, "test.key.pub")
	require.NoError(t, os.WriteFile(privPath, MarshalPrivateKeyPEM(key), 0o600))
	pemBytes, err := MarshalPublicKeyPEM(&key.PublicKey)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(pubPath, pemBytes, 0o644))

	priv, err := ReadPrivateKeyFile(privPath)
	require.NoError(t, err)
	assert.True(t, key.Equal(priv))

	pub, err := ReadPublicKeyFile(pubPath)
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(pub))

	_, err = ReadPrivateKeyFile(dir + "/missing.key")
	assert.Error(t, err)
}
