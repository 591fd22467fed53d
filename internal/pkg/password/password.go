package password

import (
	"sync"

	"charter-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
	ErrTooLong          = errs.New("password is longer than bcrypt accepts")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// MaxBytes is the longest input bcrypt hashes without truncating.
	MaxBytes = 72
)

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "bcrypt"), ErrHashingFailed)
	}

	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}

var (
	decoyOnce sync.Once
	decoyHash []byte
)

// CompareDecoy burns one bcrypt comparison against a throwaway hash. Login
// calls it for unknown or booking-only accounts so they answer as slowly as a
// wrong password does.
func CompareDecoy(plain string) {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("charter-booking-decoy"), DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(decoyHash, []byte(plain))
}
