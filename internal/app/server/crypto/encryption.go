package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

const keyLen = 32

var (
	// ErrNoKey means the encryption key was missing or malformed at startup.
	ErrNoKey = errors.New("encryption key is not configured")
	// ErrDecrypt means the ciphertext could not be read: wrong key, truncated
	// or corrupted data. Treated as a data-integrity failure by callers.
	ErrDecrypt = errors.New("ciphertext cannot be decrypted")
)

// Cipher encrypts credential secrets at rest with AES-256-GCM.
// NOTE: this is server-side encryption, not zero-knowledge. The key lives
// with the process; the cipher only guarantees the database dump alone is
// useless.
type Cipher struct {
	key []byte
}

// New builds a Cipher from a hex-encoded 32-byte key. The caller is expected
// to treat an error as fatal: running without a key would silently persist
// plaintext secrets.
func New(keyHex string) (*Cipher, error) {
	if keyHex == "" {
		return nil, ErrNoKey
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != keyLen {
		return nil, fmt.Errorf("%w: must be %d bytes hex", ErrNoKey, keyLen)
	}

	return &Cipher{key: key}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns
// hex(nonce || ciphertext). Two calls with the same input produce different
// outputs.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any malformed or foreign ciphertext yields
// ErrDecrypt.
func (c *Cipher) Decrypt(ciphertextHex string) (string, error) {
	sealed, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	gcm, err := c.gcm()
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(sealed) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return string(plaintext), nil
}

func (c *Cipher) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
