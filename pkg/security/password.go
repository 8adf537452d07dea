package security

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed      = errors.New("password hashing failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	MinPasswordLen        = 8
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLen {
		return "", errors.New("password too short")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func (b *bcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Credentials is a single email/password pair held as a bcrypt hash.
type Credentials struct {
	email  string
	hash   string
	hasher PasswordHasher
}

// NewCredentials uses hash when given, otherwise hashes password once.
func NewCredentials(email, password, hash string, hasher PasswordHasher) (*Credentials, error) {
	if hash == "" {
		var err error
		if hash, err = hasher.Hash(password); err != nil {
			return nil, err
		}
	}
	return &Credentials{email: strings.ToLower(email), hash: hash, hasher: hasher}, nil
}

// Verify checks both values; the email match is case-insensitive.
func (c *Credentials) Verify(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(c.email)) == 1
	if err := c.hasher.Compare(c.hash, password); err != nil || !emailOK {
		return ErrInvalidCredentials
	}
	return nil
}
