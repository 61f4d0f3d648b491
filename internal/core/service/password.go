package service

import "golang.org/x/crypto/bcrypt"

// BcryptHasher is the bcrypt-backed ports.PasswordHasher. The produced hash
// string embeds its own salt and cost, so verification needs no external
// state. Hashing is intentionally expensive and blocks the calling goroutine
// for its duration.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. A cost outside the
// valid bcrypt range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a one-way hash of password. Two calls on the same plaintext
// yield different strings (fresh random salt per call); both verify.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password reproduces hashed. A malformed hash string
// is a verification failure, not an error: the mismatch reason is never
// surfaced. The underlying comparison runs in constant time.
func (h *BcryptHasher) Verify(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
