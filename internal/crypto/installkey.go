package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/hkdf"
)

// InstallSecretSize is the size of the random per-install secret.
const InstallSecretSize = 32

// Context string separating the sealing key from any future key
// derived from the same install secret.
const sealingInfo = "chatterbox/token-sealing/v1"

// LoadOrCreateInstallSecret returns the per-install random secret,
// creating it on first run. The file is the device-local trust root for
// token sealing, so it is written 0600.
func LoadOrCreateInstallSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) != InstallSecretSize {
			return nil, fmt.Errorf("install secret at %s has wrong size %d", path, len(secret))
		}
		return secret, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read install secret: %w", err)
	}

	secret = make([]byte, InstallSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate install secret: %w", err)
	}

	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write install secret: %w", err)
	}

	return secret, nil
}

// SealingKey derives the 32-byte token sealing key from the install
// secret using HKDF-SHA256.
func SealingKey(installSecret []byte) ([]byte, error) {
	if len(installSecret) != InstallSecretSize {
		return nil, fmt.Errorf("install secret must be %d bytes, got %d", InstallSecretSize, len(installSecret))
	}

	key := make([]byte, KeySize)
	kdf := hkdf.New(sha256.New, installSecret, nil, []byte(sealingInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive sealing key: %w", err)
	}

	return key, nil
}
