// Package encrypt provides reversible AES-256-GCM encryption for stored
// provider credentials, plus a one-way fingerprint for possession checks.
// Stored API keys must be replayed to vendor endpoints later, so they are
// encrypted rather than hashed; the fingerprint is never used for replay.
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var ErrNoKey = errors.New("encryption key is not configured")

// Cipher encrypts and decrypts credential strings with a key derived from a
// passphrase. The zero value is a disabled cipher that refuses to operate.
type Cipher struct {
	key []byte
}

// argon2id parameters: time=1, memory=64MB, threads=4, keyLen=32. The salt is
// fixed because this derives one system-wide key, not per-user passwords.
var kdfSalt = []byte("modelhub-credential-v1")

// New derives a 32-byte AES key from the passphrase using argon2id.
func New(passphrase string) (*Cipher, error) {
	if passphrase == "" {
		return nil, ErrNoKey
	}
	key := argon2.IDKey([]byte(passphrase), kdfSalt, 1, 64*1024, 4, 32)
	return &Cipher{key: key}, nil
}

// Encrypt seals plaintext with AES-256-GCM and returns base64 ciphertext.
// Empty input stays empty so "no credential" round-trips unchanged.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if c == nil || c.key == nil {
		return "", ErrNoKey
	}
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	sealed := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if c == nil || c.key == nil {
		return "", ErrNoKey
	}
	if ciphertext == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}
	if len(data) < aesGCM.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := data[:aesGCM.NonceSize()], data[aesGCM.NonceSize():]
	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

// Fingerprint returns a hex sha256 digest of the credential. Irreversible;
// used only to detect whether a submitted key differs from the stored one.
func Fingerprint(credential string) string {
	if credential == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])
}
