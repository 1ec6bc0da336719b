// Package password hashes account credentials with argon2id keyed by a
// server-wide secret. The secret is folded into the key material through an
// HMAC pepper step, so a leaked hash/salt pair is unusable without it. The
// produced hash string is self-describing: it embeds the algorithm parameters
// and the salt in PHC format.
package password

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ddmitrenko/tools/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	algorithmID = "argon2id"

	defaultMemoryKB    uint32 = 19 * 1024
	defaultTime        uint32 = 2
	defaultParallelism uint8  = 1
	saltLength                = 16
	keyLength          uint32 = 32
)

// Hasher produces and verifies peppered argon2id hashes. The zero value is
// not usable; construct with New.
type Hasher struct {
	secret      []byte
	memoryKB    uint32
	time        uint32
	parallelism uint8
}

func New(secret string) *Hasher {
	return &Hasher{
		secret:      []byte(secret),
		memoryKB:    defaultMemoryKB,
		time:        defaultTime,
		parallelism: defaultParallelism,
	}
}

// pepper keys the password with the server secret before it reaches argon2.
// HMAC rather than concatenation: the secret participates as key material.
func (h *Hasher) pepper(password string) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// Hash returns a PHC-encoded argon2id hash with a fresh random salt:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt-b64>$<hash-b64>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("%w: generating salt: %v", common.ErrHashing, err)
	}

	key := argon2.IDKey(h.pepper(password), salt, h.time, h.memoryKB, h.parallelism, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.memoryKB,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key from password using the parameters and salt
// embedded in encoded and compares in constant time. A malformed stored hash
// yields common.ErrHashing.
func (h *Hasher) Verify(password string, encoded string) (bool, error) {
	memoryKB, time, parallelism, salt, key, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(h.pepper(password), salt, time, memoryKB, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

func parsePHC(encoded string) (memoryKB, time uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid PHC format", common.ErrHashing)
	}
	if parts[1] != algorithmID {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", common.ErrHashing, parts[1])
	}

	version, convErr := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if !strings.HasPrefix(parts[2], "v=") || convErr != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported argon2 version", common.ErrHashing)
	}

	for _, pair := range strings.Split(parts[3], ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid parameter entry", common.ErrHashing)
		}
		v, convErr := strconv.ParseUint(kv[1], 10, 32)
		if convErr != nil {
			return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid parameter value", common.ErrHashing)
		}
		switch kv[0] {
		case "m":
			memoryKB = uint32(v)
		case "t":
			time = uint32(v)
		case "p":
			if v > 255 {
				return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid parallelism", common.ErrHashing)
			}
			parallelism = uint8(v)
		default:
			return 0, 0, 0, nil, nil, fmt.Errorf("%w: unsupported parameter %q", common.ErrHashing, kv[0])
		}
	}
	if memoryKB == 0 || time == 0 || parallelism == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: missing parameters", common.ErrHashing)
	}

	salt, convErr = base64.RawStdEncoding.DecodeString(parts[4])
	if convErr != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid salt encoding", common.ErrHashing)
	}
	key, convErr = base64.RawStdEncoding.DecodeString(parts[5])
	if convErr != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("%w: invalid hash encoding", common.ErrHashing)
	}

	return memoryKB, time, parallelism, salt, key, nil
}
