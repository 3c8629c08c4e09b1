// Package auth issues access tokens and stores/compares passwords.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/shashiranjanraj/donorlink/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a plain password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Check(stored, plain string) bool
}

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned (wrapped) by BcryptHasher.Hash for input
// over MaxPasswordBytes.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// BcryptHasher stores salted bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(b), nil
}

func (h BcryptHasher) Check(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// PlainHasher stores passwords verbatim and compares by equality. It exists
// for databases populated by the legacy service, which kept clear text.
type PlainHasher struct{}

func (PlainHasher) Hash(plain string) (string, error) { return plain, nil }

func (PlainHasher) Check(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// HasherFromConfig selects the hasher named by PASSWORD_HASHER.
func HasherFromConfig() (PasswordHasher, error) {
	switch kind := config.PasswordHasher(); kind {
	case "bcrypt", "":
		cost := config.BcryptCost()
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("auth: BCRYPT_COST %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return BcryptHasher{Cost: cost}, nil
	case "plain":
		return PlainHasher{}, nil
	default:
		return nil, fmt.Errorf("auth: unknown PASSWORD_HASHER %q (supported: bcrypt, plain)", kind)
	}
}
