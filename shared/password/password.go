package password

//go:generate go run go.uber.org/mock/mockgen -source=./password.go -destination=./mocks/password_mock.go -package=mocks

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

// Hasher hashes secrets and checks plaintext candidates against stored hashes.
type Hasher interface {
	Hash(plain string) (string, error)
	Matches(plain, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// New returns a bcrypt backed Hasher using DefaultCost.
func New() Hasher {
	return NewWithCost(DefaultCost)
}

// NewWithCost returns a bcrypt backed Hasher. Costs outside bcrypt's range fall back to DefaultCost.
func NewWithCost(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

func (h *bcryptHasher) Matches(plain, hash string) bool {
	return Verify(plain, hash) == nil
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
