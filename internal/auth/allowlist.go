// Package auth decides which SSH visitors may open the storefront and
// derives the per-visitor cart key from their public key.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"
)

// ErrAllowlistNotFound is returned when the allowlist file doesn't exist.
var ErrAllowlistNotFound = errors.New("allowlist file not found")

// Allowlist is a set of public keys read from an authorized_keys file.
type Allowlist struct {
	keys map[string]struct{}
}

// NewAllowlist returns an allowlist holding keys.
func NewAllowlist(keys ...ssh.PublicKey) *Allowlist {
	a := &Allowlist{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		a.keys[string(k.Marshal())] = struct{}{}
	}
	return a
}

// LoadAllowlist reads an OpenSSH authorized_keys file. Blank lines and
// comments are skipped; unparsable lines are logged and skipped.
func LoadAllowlist(path string, log zerolog.Logger) (*Allowlist, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrAllowlistNotFound
		}
		return nil, fmt.Errorf("opening allowlist: %w", err)
	}
	defer file.Close()

	var keys []ssh.PublicKey
	scanner := bufio.NewScanner(file)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			log.Warn().Err(err).Str("path", path).Int("line", lineNum).Msg("skipping invalid allowlist entry")
			continue
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading allowlist: %w", err)
	}

	return NewAllowlist(keys...), nil
}

// Allows reports whether key is on the list.
func (a *Allowlist) Allows(key ssh.PublicKey) bool {
	if a == nil || key == nil {
		return false
	}
	_, ok := a.keys[string(key.Marshal())]
	return ok
}

// Len returns the number of distinct keys.
func (a *Allowlist) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// CreateEmptyAllowlist writes an allowlist file containing only a usage
// comment.
func CreateEmptyAllowlist(path string) error {
	content := `# Popcorn terminal allowlist
# One public key per line, OpenSSH authorized_keys format:
# ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIExample... you@host
`
	return os.WriteFile(path, []byte(content), 0o644)
}

// VisitorKey returns the store key of the visitor holding key: base
// suffixed with the key's SHA256 fingerprint. Without a key it is base.
func VisitorKey(base string, key ssh.PublicKey) string {
	if key == nil {
		return base
	}
	return base + ":" + ssh.FingerprintSHA256(key)
}
