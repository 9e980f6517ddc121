// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	blobVersion = 0x01
	saltSize    = 16
)

// keyVault is the private implementation of [KeyVault].
type keyVault struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// lowered in tests and tuned per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewKeyVault constructs a [KeyVault] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewKeyVault() KeyVault {
	return &keyVault{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		random:       rand.Reader,
	}
}

// deriveKey derives the key-encryption key from password and salt using
// Argon2id with the parameters stored in the receiver.
func (v *keyVault) deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		v.argonTime,
		v.argonMemory,
		v.argonThreads,
		v.argonKeyLen,
	)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt implements [KeyVault].
func (v *keyVault) Encrypt(password string, plaintext []byte) (string, error) {
	// 1. Fresh salt per blob
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	// 2. KEK from password
	kek := v.deriveKey(password, salt)
	defer Wipe(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return "", err
	}

	// 3. Random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(v.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. version ‖ salt ‖ nonce ‖ ciphertext. The header is bound to the
	// ciphertext as additional data so it cannot be swapped.
	header := make([]byte, 0, 1+saltSize+len(nonce))
	header = append(header, blobVersion)
	header = append(header, salt...)
	header = append(header, nonce...)

	ciphertext := gcm.Seal(nil, nonce, plaintext, header)
	blob := append(header, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [KeyVault].
func (v *keyVault) Decrypt(password string, encoded string) ([]byte, error) {
	// 1. Decode base64 blob
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrDecryption, err)
	}

	if len(blob) == 0 {
		return nil, fmt.Errorf("%w: empty blob", ErrDecryption)
	}
	if blob[0] != blobVersion {
		return nil, fmt.Errorf("%w: unsupported blob version %d", ErrDecryption, blob[0])
	}
	if len(blob) < 1+saltSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryption)
	}
	salt := blob[1 : 1+saltSize]

	// 2. KEK from password and stored salt
	kek := v.deriveKey(password, salt)
	defer Wipe(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// 3. Split header and ciphertext
	headerLen := 1 + saltSize + gcm.NonceSize()
	if len(blob) < headerLen+gcm.Overhead() {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryption)
	}
	header := blob[:headerLen]
	nonce := blob[1+saltSize : headerLen]
	ciphertext := blob[headerLen:]

	// 4. Decrypt and verify auth tag. A mismatch almost always means the
	// operator typed the wrong password.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return plaintext, nil
}

// Wipe overwrites b with zeros. Call it on key material that is no longer
// needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
