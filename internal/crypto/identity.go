// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Identity is the node keypair restored from decrypted key material. The
// public half, hex encoded, is the node ID sent in every report.
type Identity struct {
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// ParseIdentity interprets keyMaterial as a hex-encoded 32-byte ed25519 seed.
// Surrounding whitespace is ignored. Anything else wraps
// [ErrInvalidKeyMaterial]; after a successful [KeyVault.Decrypt] this can
// only mean the key file was written by a different tool.
func ParseIdentity(keyMaterial []byte) (*Identity, error) {
	trimmed := bytes.TrimSpace(keyMaterial)
	if len(trimmed) != hex.EncodedLen(ed25519.SeedSize) {
		return nil, fmt.Errorf("%w: expected %d hex characters, got %d",
			ErrInvalidKeyMaterial, hex.EncodedLen(ed25519.SeedSize), len(trimmed))
	}

	seed := make([]byte, ed25519.SeedSize)
	defer Wipe(seed)
	if _, err := hex.Decode(seed, trimmed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	private := ed25519.NewKeyFromSeed(seed)
	return &Identity{
		private: private,
		public:  private.Public().(ed25519.PublicKey),
	}, nil
}

// GenerateIdentity creates a fresh identity and returns it together with its
// key material in the text form accepted by [ParseIdentity].
func GenerateIdentity() (*Identity, []byte, error) {
	seed := make([]byte, ed25519.SeedSize)
	defer Wipe(seed)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, fmt.Errorf("generate seed: %w", err)
	}

	material := make([]byte, hex.EncodedLen(len(seed)))
	hex.Encode(material, seed)

	identity, err := ParseIdentity(material)
	if err != nil {
		return nil, nil, err
	}
	return identity, material, nil
}

// NodeID returns the hex-encoded public key.
func (i *Identity) NodeID() string {
	return hex.EncodeToString(i.public)
}

// PrivateKey returns the signing key.
func (i *Identity) PrivateKey() ed25519.PrivateKey {
	return i.private
}

// PublicKey returns the verification key.
func (i *Identity) PublicKey() ed25519.PublicKey {
	return i.public
}

// Close zeroes the private key and drops it. PrivateKey returns nil
// afterwards.
func (i *Identity) Close() {
	Wipe(i.private)
	i.private = nil
}
