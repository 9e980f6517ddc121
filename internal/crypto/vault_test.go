// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestVault keeps Argon2id cheap so the suite stays fast.
func newTestVault() *keyVault {
	return &keyVault{
		argonTime:    1,
		argonMemory:  8 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
		random:       rand.Reader,
	}
}

func TestNewKeyVault_Parameters(t *testing.T) {
	v := NewKeyVault().(*keyVault)

	assert.Equal(t, uint32(1), v.argonTime)
	assert.Equal(t, uint32(64*1024), v.argonMemory)
	assert.Equal(t, uint8(4), v.argonThreads)
	assert.Equal(t, uint32(32), v.argonKeyLen)
}

func TestKeyVault_RoundTrip(t *testing.T) {
	v := newTestVault()

	tests := []struct {
		name      string
		password  string
		plaintext []byte
	}{
		{name: "hex key", password: "correct horse battery staple", plaintext: []byte("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")},
		{name: "empty password", password: "", plaintext: []byte("secret")},
		{name: "unicode password", password: "пароль-🔑", plaintext: []byte("secret")},
		{name: "empty plaintext", password: "pw", plaintext: []byte{}},
		{name: "binary plaintext", password: "pw", plaintext: []byte{0x00, 0xff, 0x10, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := v.Encrypt(tt.password, tt.plaintext)
			require.NoError(t, err)

			got, err := v.Decrypt(tt.password, blob)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.plaintext, got), "round-trip mismatch")
		})
	}
}

func TestKeyVault_BlobIsTextSafe(t *testing.T) {
	v := newTestVault()

	blob, err := v.Encrypt("pw", []byte("secret"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.Equal(t, byte(blobVersion), raw[0])
	// version + salt + nonce + plaintext + tag
	assert.Len(t, raw, 1+saltSize+12+len("secret")+16)
}

func TestKeyVault_EncryptIsSalted(t *testing.T) {
	v := newTestVault()

	b1, err := v.Encrypt("pw", []byte("secret"))
	require.NoError(t, err)
	b2, err := v.Encrypt("pw", []byte("secret"))
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2, "expected different blobs for two encryptions")
}

func TestKeyVault_WrongPassword(t *testing.T) {
	v := newTestVault()

	blob, err := v.Encrypt("right", []byte("secret"))
	require.NoError(t, err)

	got, err := v.Decrypt("wrong", blob)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.Nil(t, got)
}

func TestKeyVault_MalformedBlobs(t *testing.T) {
	v := newTestVault()

	valid, err := v.Encrypt("pw", []byte("secret"))
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(valid)
	require.NoError(t, err)

	tampered := append([]byte(nil), raw...)
	tampered[len(tampered)-1] ^= 0x01

	wrongVersion := append([]byte(nil), raw...)
	wrongVersion[0] = 0x7f

	tests := []struct {
		name string
		blob string
	}{
		{name: "not base64", blob: "%%%not-base64%%%"},
		{name: "empty", blob: ""},
		{name: "only version", blob: base64.StdEncoding.EncodeToString([]byte{blobVersion})},
		{name: "truncated", blob: base64.StdEncoding.EncodeToString(raw[:1+saltSize+4])},
		{name: "tampered ciphertext", blob: base64.StdEncoding.EncodeToString(tampered)},
		{name: "unknown version", blob: base64.StdEncoding.EncodeToString(wrongVersion)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Decrypt("pw", tt.blob)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}
