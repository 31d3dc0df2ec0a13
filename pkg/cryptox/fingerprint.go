package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for identity fingerprints. They match the cost used for
// password hashing elsewhere in our services (19 MiB, t=2, p=1).
const (
	fingerprintMemory      = 19 * 1024
	fingerprintIterations  = 2
	fingerprintParallelism = 1
	fingerprintKeyLength   = 32
)

// fieldSeparator cannot appear in normalized input, so ("ab","c") and
// ("a","bc") never collide.
const fieldSeparator = "\x1f"

// FingerprintIdentity derives a deterministic, pepper-keyed fingerprint from
// already-normalized identity fields.
//
// Unlike FingerprintToken this is slow. The salt is derived from the pepper,
// so the database alone is not enough to confirm a registration.
func FingerprintIdentity(pepper []byte, fields ...string) string {
	salt := sha256.Sum256(append([]byte("ballot/identity/v1:"), pepper...))
	key := argon2.IDKey(
		[]byte(strings.Join(fields, fieldSeparator)),
		salt[:16],
		fingerprintIterations,
		fingerprintMemory,
		fingerprintParallelism,
		fingerprintKeyLength,
	)
	return base64.RawURLEncoding.EncodeToString(key)
}
