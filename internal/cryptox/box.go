// Package cryptox seals credential values before they touch the local
// database, so a copied database file alone does not leak the session token.
package cryptox

import (
	"errors"
	"fmt"
	"os"

	"gymcli/internal/common"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the required length of a Box key in bytes.
const KeySize = chacha20poly1305.KeySize

var ErrInvalidSealedValue = errors.New("invalid sealed value")

// Box encrypts and decrypts small values with XChaCha20-Poly1305.
// The sealed form is nonce||ciphertext; each Seal call draws a fresh
// random nonce.
type Box struct {
	key []byte
}

// NewBox returns a Box using the given KeySize-byte key.
func NewBox(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	return &Box{key: append([]byte(nil), key...)}, nil
}

// Seal encrypts plain and returns nonce||ciphertext.
func (b *Box) Seal(plain []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plain, nil), nil
}

// Open decrypts a value produced by Seal. A truncated or tampered value
// yields ErrInvalidSealedValue.
func (b *Box) Open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(b.key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, ErrInvalidSealedValue
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidSealedValue
	}
	return plain, nil
}

// LoadOrCreateKey reads a device key from path, generating and persisting
// a fresh random key (mode 0600) on first use.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("device key file %s is corrupt", path)
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	key = common.GenerateRandByteArray(KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("saving device key: %w", err)
	}
	return key, nil
}
