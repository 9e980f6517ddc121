// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/node-reporter/internal/crypto"
)

// ReadKeyFile returns the trimmed encrypted blob stored at path.
func ReadKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadKeyFile, err)
	}

	blob := strings.TrimSpace(string(data))
	if blob == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrReadKeyFile, path)
	}
	return blob, nil
}

// UnlockIdentity reads the key file at path, decrypts it with the password
// obtained from password and restores the node identity. The decrypted key
// material is wiped before returning.
func UnlockIdentity(path string, vault crypto.KeyVault, password PasswordSource) (*crypto.Identity, error) {
	blob, err := ReadKeyFile(path)
	if err != nil {
		return nil, err
	}

	pass, err := password()
	if err != nil {
		return nil, err
	}

	material, err := vault.Decrypt(pass, blob)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(material)

	return crypto.ParseIdentity(material)
}
