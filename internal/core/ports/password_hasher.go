package ports

// PasswordHasher performs one-way credential hashing. Hash output is
// self-contained (salt and cost parameters embedded), so Verify needs no
// external state. Verify returns false for malformed hashes, never an error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) bool
}
