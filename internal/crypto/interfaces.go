package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_vault_mock.go -package=mock

// KeyVault protects the node operator's private key at rest. It is a pure
// transform: it never touches the filesystem, callers read and write the
// key file themselves.
//
// Blob layout (before Base64 encoding):
//
//	version (1 byte) ‖ salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext+tag
//
// The key-encryption key is derived from the password and salt with
// Argon2id, so the same password never produces the same key twice.
type KeyVault interface {
	// Encrypt seals plaintext under a key derived from password and returns
	// the Base64 text form of the blob. Two calls with the same input
	// produce different blobs (fresh salt and nonce).
	Encrypt(password string, plaintext []byte) (string, error)

	// Decrypt reverses Encrypt. Every failure (malformed text, truncated
	// blob, unknown version, wrong password, tampered ciphertext) wraps
	// [ErrDecryption].
	Decrypt(password string, blob string) ([]byte, error)
}
