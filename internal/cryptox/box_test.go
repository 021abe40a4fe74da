package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"gymcli/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_SealOpenRoundTrip(t *testing.T) {
	box, err := NewBox(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)

	plain := []byte("some secret token")
	sealed, err := box.Seal(plain)
	require.NoError(t, err)
	require.NotEqual(t, plain, sealed)

	got, err := box.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestBox_FreshNoncePerSeal(t *testing.T) {
	box, err := NewBox(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)

	a, err := box.Seal([]byte("x"))
	require.NoError(t, err)
	b, err := box.Seal([]byte("x"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "sealing the same value twice must not repeat")
}

func TestBox_TamperedValue(t *testing.T) {
	box, err := NewBox(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)

	sealed, err := box.Seal([]byte("secret"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = box.Open(sealed)
	require.ErrorIs(t, err, ErrInvalidSealedValue)
}

func TestBox_TruncatedValue(t *testing.T) {
	box, err := NewBox(common.GenerateRandByteArray(KeySize))
	require.NoError(t, err)

	_, err = box.Open([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidSealedValue)
}

func TestNewBox_RejectsBadKeyLength(t *testing.T) {
	_, err := NewBox([]byte("short"))
	require.Error(t, err)
}

func TestLoadOrCreateKey_CreatesAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")

	key1, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	require.Len(t, key1, KeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key2, err := LoadOrCreateKey(path)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "the key must be stable across loads")
}

func TestLoadOrCreateKey_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o600))

	_, err := LoadOrCreateKey(path)
	require.Error(t, err)
}
