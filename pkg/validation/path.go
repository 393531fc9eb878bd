// Package validation checks the path parameters of registry requests before
// they reach the storage layer.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/distribution/reference"
	"github.com/google/uuid"

	"github.com/bnema/walrus-registry/pkg/digest"
)

// Tag validation follows the distribution grammar:
// - Word characters, dots and hyphens
// - Must not start with a dot or hyphen
// - Max 128 characters
var tagRegex = regexp.MustCompile(`^` + reference.TagRegexp.String() + `$`)

// MaxRepositoryNameLength is the maximum allowed length for repository names.
const MaxRepositoryNameLength = reference.NameTotalLengthMax

// ValidateRepositoryName validates a repository name such as "myorg/myapp".
// Tags and digests are not part of a name and are rejected.
func ValidateRepositoryName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > MaxRepositoryNameLength {
		return fmt.Errorf("repository name too long: %d chars (max %d)", len(name), MaxRepositoryNameLength)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("repository name contains path traversal sequence")
	}

	ref, err := reference.Parse(name)
	if err != nil {
		return fmt.Errorf("invalid repository name format: %w", err)
	}

	named, ok := ref.(reference.Named)
	if !ok || named.Name() != name {
		return fmt.Errorf("invalid repository name format: tag or digest not allowed")
	}

	return nil
}

// ValidateReference validates a tag or reference.
// Also accepts digest format for manifest references by digest.
func ValidateReference(ref string) error {
	if ref == "" {
		return fmt.Errorf("reference cannot be empty")
	}

	if strings.Contains(ref, "..") {
		return fmt.Errorf("reference contains path traversal sequence")
	}

	if digest.Validate(ref) == nil {
		return nil
	}

	if !tagRegex.MatchString(ref) {
		return fmt.Errorf("invalid reference format: must be a valid tag or digest")
	}

	return nil
}

// ValidateDigest validates a content digest.
// Format is algorithm:hex, checked by go-digest (sha256, sha384, sha512).
func ValidateDigest(dgst string) error {
	if dgst == "" {
		return fmt.Errorf("digest cannot be empty")
	}

	if strings.Contains(dgst, "..") {
		return fmt.Errorf("digest contains path traversal sequence")
	}

	if err := digest.Validate(dgst); err != nil {
		return fmt.Errorf("invalid digest format: %w", err)
	}

	return nil
}

// ValidateUUID validates an upload session identifier.
// UUIDs are server-generated but still validated for safety.
func ValidateUUID(id string) error {
	if id == "" {
		return fmt.Errorf("UUID cannot be empty")
	}

	if strings.Contains(id, "..") {
		return fmt.Errorf("UUID contains path traversal sequence")
	}

	// Only the canonical lower-case hyphenated form is ever issued.
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return fmt.Errorf("invalid UUID format")
	}

	return nil
}
