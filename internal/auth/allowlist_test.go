package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func newKey(t *testing.T) ssh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestLoadAllowlist(t *testing.T) {
	allowed := newKey(t)
	other := newKey(t)

	path := filepath.Join(t.TempDir(), "allowlist")
	content := strings.Join([]string{
		"# visitors",
		"",
		"not a key",
		strings.TrimSpace(string(ssh.MarshalAuthorizedKey(allowed))) + " sam@laptop",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	list, err := LoadAllowlist(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Len())
	assert.True(t, list.Allows(allowed))
	assert.False(t, list.Allows(other))
	assert.False(t, list.Allows(nil))
}

func TestLoadAllowlistMissing(t *testing.T) {
	_, err := LoadAllowlist(filepath.Join(t.TempDir(), "nope"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrAllowlistNotFound)
}

func TestCreateEmptyAllowlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allowlist")
	require.NoError(t, CreateEmptyAllowlist(path))

	list, err := LoadAllowlist(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Zero(t, list.Len())
}

func TestNilAllowlist(t *testing.T) {
	var list *Allowlist
	assert.False(t, list.Allows(newKey(t)))
	assert.Zero(t, list.Len())
}

func TestVisitorKey(t *testing.T) {
	key := newKey(t)

	got := VisitorKey("shoppingCart", key)
	assert.True(t, strings.HasPrefix(got, "shoppingCart:SHA256:"))
	assert.Equal(t, got, VisitorKey("shoppingCart", key), "stable per key")
	assert.NotEqual(t, got, VisitorKey("shoppingCart", newKey(t)))
	assert.Equal(t, "shoppingCart", VisitorKey("shoppingCart", nil))
}
