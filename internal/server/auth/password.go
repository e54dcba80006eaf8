package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"teamcal/internal/common"
)

// argon2id parameters. Matching the key-derivation cost used elsewhere in
// the codebase keeps login latency predictable.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword derives an argon2id hash from the raw password with a fresh
// random salt and returns it PHC-encoded
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
func HashPassword(rawPassword string) (string, error) {
	salt := common.GenerateRandByteArray(argonSaltLen)
	key := argon2.IDKey([]byte(rawPassword), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword re-derives the key from the candidate password using the
// parameters and salt embedded in the PHC string and compares in constant
// time. The comparison cost depends on the hash parameters, never on where
// the candidate first differs.
func VerifyPassword(phc string, rawPassword string) bool {
	parts := strings.Split(phc, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(rawPassword), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1
}

// dummyPHC is verified against when a login id is unknown, so the response
// latency does not reveal whether the account exists.
var dummyPHC = func() string {
	phc, _ := HashPassword("decoy")
	return phc
}()

// VerifyDummy burns the same amount of work as a real verification and
// always returns false.
func VerifyDummy(rawPassword string) bool {
	VerifyPassword(dummyPHC, rawPassword)
	return false
}
