// auth реализует выпуск и проверку учётных данных сессии:
//
//   - password.go — хеширование паролей argon2id в формате PHC;
//   - token.go — выпуск/проверка access- и refresh-JWT;
//   - bearer.go — разбор заголовка Authorization.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrHashing — внутренняя ошибка при вычислении хеша пароля.
var ErrHashing = errors.New("password hashing failed")

const (
	saltLen = 16
	keyLen  = 32

	// maxMemoryKiB ограничивает параметр m, прочитанный из хеша.
	maxMemoryKiB = 1 << 20
)

// PasswordParams — стоимость argon2id.
type PasswordParams struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultPasswordParams — 64 MiB, t=3, p=1.
var DefaultPasswordParams = PasswordParams{
	MemoryKiB:   64 * 1024,
	Iterations:  3,
	Parallelism: 1,
}

// Hasher вычисляет хеши паролей с заданными параметрами.
type Hasher struct {
	params PasswordParams
}

// NewHasher создаёт Hasher; нулевые параметры заменяются значениями по умолчанию.
func NewHasher(p PasswordParams) *Hasher {
	if p.MemoryKiB == 0 {
		p.MemoryKiB = DefaultPasswordParams.MemoryKiB
	}

	if p.Iterations == 0 {
		p.Iterations = DefaultPasswordParams.Iterations
	}

	if p.Parallelism == 0 {
		p.Parallelism = DefaultPasswordParams.Parallelism
	}

	return &Hasher{params: p}
}

// Hash возвращает строку вида $argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>.
func (h *Hasher) Hash(plain string) (string, error) {
	const op = "auth.password.Hash"

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, ErrHashing, err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.params.Iterations, h.params.MemoryKiB, h.params.Parallelism, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify — см. VerifyPassword.
func (h *Hasher) Verify(encoded, plain string) bool {
	return VerifyPassword(encoded, plain)
}

// HashPassword хеширует пароль с параметрами по умолчанию.
func HashPassword(plain string) (string, error) {
	return NewHasher(DefaultPasswordParams).Hash(plain)
}

// VerifyPassword сравнивает пароль с хешем. Параметры берутся из самого хеша.
// Никогда не возвращает ошибку: любой сбой разбора означает false.
func VerifyPassword(encoded, plain string) bool {
	p, salt, want, ok := decodeHash(encoded)
	if !ok {
		return false
	}

	got := argon2.IDKey([]byte(plain), salt, p.Iterations, p.MemoryKiB, p.Parallelism, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1
}

func decodeHash(encoded string) (PasswordParams, []byte, []byte, bool) {
	var p PasswordParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, false
	}

	if p.MemoryKiB == 0 || p.MemoryKiB > maxMemoryKiB || p.Iterations == 0 || p.Parallelism == 0 {
		return p, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, false
	}

	return p, salt, key, true
}
