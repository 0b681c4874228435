// Package credentials mints login/password pairs for new applications.
package credentials

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// loginSuffixBytes sizes the random login suffix. Six bytes give a 2^48
// keyspace, keeping the birthday-bound collision probability below 1e-6
// even across tens of thousands of submissions from the same leader.
const (
	loginSuffixBytes = 6
	passwordBytes    = 12
)

// Pair holds freshly generated access credentials.
type Pair struct {
	Login    string
	Password string
}

// New derives a login from the leader's display name and generates an
// unrelated random password.
//
// The login prefix is the upper-cased name with all whitespace removed; a
// fixed-length random hex suffix makes repeat submissions from the same
// leader produce distinct logins with overwhelming probability. Uniqueness
// against stored records is not checked here; a collision surfaces as a
// conflict from the store.
func New(leaderName string) (Pair, error) {
	suffix := make([]byte, loginSuffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		return Pair{}, fmt.Errorf("generate login suffix: %w", err)
	}

	pw := make([]byte, passwordBytes)
	if _, err := rand.Read(pw); err != nil {
		return Pair{}, fmt.Errorf("generate password: %w", err)
	}

	return Pair{
		Login:    normalize(leaderName) + hex.EncodeToString(suffix),
		Password: base64.RawURLEncoding.EncodeToString(pw),
	}, nil
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
