// Package hashing provides the one-way password hasher used when storing
// user credentials. Plaintext never reaches a repository.
package hashing

// Hasher hashes plaintext passwords into an opaque encoded form and verifies
// candidates against it.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}
