package crypto

import "errors"

var (
	// ErrDecryption is returned when a blob cannot be opened: wrong password,
	// corrupted or truncated data, or an unsupported blob version.
	ErrDecryption = errors.New("key decryption failed")

	// ErrInvalidKeyMaterial is returned when decrypted bytes are not a valid
	// node private key.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)
