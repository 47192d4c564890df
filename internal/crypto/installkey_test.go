package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateInstallSecret_CreatesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.key")

	first, err := LoadOrCreateInstallSecret(path)
	require.NoError(t, err)
	assert.Len(t, first, InstallSecretSize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreateInstallSecret(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrCreateInstallSecret_WrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateInstallSecret(path)
	assert.Error(t, err)
}

func TestSealingKey_Deterministic(t *testing.T) {
	secret := make([]byte, InstallSecretSize)
	for i := range secret {
		secret[i] = byte(i * 3)
	}

	key1, err := SealingKey(secret)
	require.NoError(t, err)
	key2, err := SealingKey(secret)
	require.NoError(t, err)

	assert.Len(t, key1, KeySize)
	assert.Equal(t, key1, key2)
	// The sealing key must not leak the raw secret.
	assert.NotEqual(t, secret, key1)
}

func TestSealingKey_WrongSecretSize(t *testing.T) {
	_, err := SealingKey(make([]byte, 16))
	assert.Error(t, err)
}
