// internal/app/system/password/password.go
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/argon2"
)

// Params controls argon2id hashing cost. MemoryKiB is in KiB as required
// by argon2.IDKey.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns the baseline cost used for interactive logins.
func DefaultParams() Params {
	return Params{
		MemoryKiB:   64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// MinLength is the minimum accepted password length.
const MinLength = 8

var (
	// ErrWeakPassword is returned when a password fails the strength policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters and contain upper, lower, digit, and symbol characters")

	// ErrInvalidHash is returned for malformed or unsupported encoded hashes.
	ErrInvalidHash = errors.New("invalid password hash")
)

// dummyHash is a well-formed encoded hash whose digest matches no password.
// Login paths verify against it when the email is unknown so that both
// branches perform the same argon2 work.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Hasher computes and verifies argon2id password hashes.
type Hasher struct {
	Params Params
}

// New returns a Hasher with the default cost parameters.
func New() Hasher {
	return Hasher{Params: DefaultParams()}
}

// Hash hashes a password with a fresh random salt and returns the encoded
// form: $argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>.
func (h Hasher) Hash(raw string) (string, error) {
	salt := make([]byte, h.Params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}

	key := argon2.IDKey([]byte(raw), salt,
		h.Params.Iterations, h.Params.MemoryKiB, h.Params.Parallelism, h.Params.KeyLength)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.Params.MemoryKiB, h.Params.Iterations, h.Params.Parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// Verify reports whether raw matches the encoded hash. The digest
// comparison is constant time. Malformed hashes return ErrInvalidHash.
func (h Hasher) Verify(raw, encoded string) (bool, error) {
	params, salt, expected, err := decode(encoded)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(raw), salt,
		params.Iterations, params.MemoryKiB, params.Parallelism, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// VerifyDummy burns the cost of a real verification without matching
// anything. Call it on the unknown-email login branch so response timing
// does not reveal whether the account exists.
func (h Hasher) VerifyDummy(raw string) {
	_, _ = h.Verify(raw, dummyHash)
}

// ValidateStrength enforces the registration password policy: MinLength
// characters with at least one upper, lower, digit, and symbol.
func ValidateStrength(raw string) error {
	if len(raw) < MinLength {
		return ErrWeakPassword
	}
	var upper, lower, digit, symbol bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}

// decode parses an encoded hash and returns its params, salt, and digest.
func decode(encoded string) (Params, []byte, []byte, error) {
	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return Params{}, nil, nil, ErrInvalidHash
	}

	var mem, iter, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if mem == 0 || iter == 0 || par == 0 || par > 255 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	digest, err := b64.DecodeString(parts[5])
	if err != nil {
		return Params{}, nil, nil, ErrInvalidHash
	}
	if len(salt) < 8 || len(digest) < 16 {
		return Params{}, nil, nil, ErrInvalidHash
	}

	return Params{
		MemoryKiB:   mem,
		Iterations:  iter,
		Parallelism: uint8(par),
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(digest)),
	}, salt, digest, nil
}
