// Package digest computes and checks the content fingerprints used to
// address blobs and manifests.
package digest

import (
	_ "crypto/sha256" // registers the canonical algorithm with go-digest
	_ "crypto/sha512" // sha384 and sha512 references are accepted by Validate
	"fmt"
	"io"

	godigest "github.com/opencontainers/go-digest"
)

// Algorithm is the only algorithm blobs are named with.
const Algorithm = godigest.SHA256

// FromBytes returns "sha256:" followed by the lower-case hex hash of data.
func FromBytes(data []byte) string {
	return Algorithm.FromBytes(data).String()
}

// FromReader hashes everything read from r.
func FromReader(r io.Reader) (string, error) {
	d, err := Algorithm.FromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return d.String(), nil
}

// Validate checks that s is a well-formed digest of an available
// algorithm with lower-case hex of the right length.
func Validate(s string) error {
	if err := godigest.Digest(s).Validate(); err != nil {
		return fmt.Errorf("invalid digest %q: %w", s, err)
	}
	return nil
}

// Verify reports whether data hashes to expected.
func Verify(data []byte, expected string) bool {
	return FromBytes(data) == expected
}
