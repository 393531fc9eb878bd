package validation

import (
	"strings"
	"testing"
)

func TestValidateRepositoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		// Valid cases
		{"simple name", "myapp", false, ""},
		{"with hyphen", "my-app", false, ""},
		{"with underscore", "my_app", false, ""},
		{"with dot", "my.app", false, ""},
		{"nested path", "myorg/myapp", false, ""},
		{"deeply nested", "myorg/team/myapp", false, ""},
		{"with numbers", "app123", false, ""},
		{"complex valid", "my-org/my_app.v2", false, ""},
		{"dashed separator", "my--app", false, ""},
		{"with registry host", "localhost:5000/myapp", false, ""},

		// Invalid cases - path traversal
		{"path traversal simple", "../etc/passwd", true, "path traversal"},
		{"path traversal nested", "myorg/../../../etc", true, "path traversal"},
		{"path traversal in middle", "myorg/..hidden/app", true, "path traversal"},
		{"double dot only", "..", true, "path traversal"},

		// Invalid cases - format
		{"empty", "", true, "cannot be empty"},
		{"starts with hyphen", "-myapp", true, "invalid repository name format"},
		{"starts with dot", ".myapp", true, "invalid repository name format"},
		{"ends with hyphen", "myapp-", true, "invalid repository name format"},
		{"uppercase", "MyApp", true, "invalid repository name format"},
		{"special chars", "my@app", true, "invalid repository name format"},
		{"spaces", "my app", true, "invalid repository name format"},
		{"tagged name", "myapp:latest", true, "tag or digest not allowed"},
		{"digested name", "myapp@sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", true, "tag or digest not allowed"},
		{"starts with slash", "/myapp", true, "invalid repository name format"},
		{"ends with slash", "myapp/", true, "invalid repository name format"},
		{"too long", strings.Repeat("a", 256), true, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepositoryName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateRepositoryName(%q) expected error containing %q, got nil", tt.input, tt.errMsg)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateRepositoryName(%q) error = %q, want error containing %q", tt.input, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateRepositoryName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateReference(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		// Valid tags
		{"simple tag", "latest", false, ""},
		{"version tag", "v1.0.0", false, ""},
		{"with hyphen", "my-tag", false, ""},
		{"with underscore", "my_tag", false, ""},
		{"with dot", "my.tag", false, ""},
		{"numeric", "123", false, ""},
		{"alphanumeric", "abc123", false, ""},

		// Valid digests as references
		{"sha256 digest", "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", false, ""},
		{"sha512 digest", "sha512:" + strings.Repeat("a", 128), false, ""},

		// Invalid cases - path traversal
		{"path traversal", "../etc", true, "path traversal"},
		{"hidden traversal", "tag/../other", true, "path traversal"},

		// Invalid cases - format
		{"empty", "", true, "cannot be empty"},
		{"starts with underscore", "_tag", false, ""},
		{"starts with hyphen", "-tag", true, "invalid reference format"},
		{"starts with dot", ".tag", true, "invalid reference format"},
		{"too long tag", strings.Repeat("a", 129), true, "invalid reference format"},
		{"special chars", "tag@latest", true, "invalid reference format"},
		{"spaces", "my tag", true, "invalid reference format"},

		// Invalid digests
		{"wrong algorithm", "md5:abc123", true, "invalid reference format"},
		{"short sha256", "sha256:abc", true, "invalid reference format"},
		{"uppercase hex", "sha256:ABC123" + strings.Repeat("0", 58), true, "invalid reference format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReference(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateReference(%q) expected error containing %q, got nil", tt.input, tt.errMsg)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateReference(%q) error = %q, want error containing %q", tt.input, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateReference(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateDigest(t *testing.T) {
	validSHA256 := "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	validSHA512 := "sha512:" + strings.Repeat("a", 128)

	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		// Valid cases
		{"valid sha256", validSHA256, false, ""},
		{"valid sha512", validSHA512, false, ""},
		{"valid sha384", "sha384:" + strings.Repeat("b", 96), false, ""},

		// Invalid cases - path traversal
		{"path traversal", "sha256:../../../etc/passwd", true, "path traversal"},

		// Invalid cases - format
		{"empty", "", true, "cannot be empty"},
		{"no algorithm", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", true, "invalid digest format"},
		{"wrong algorithm", "md5:abc123", true, "invalid digest format"},
		{"sha1 not allowed", "sha1:" + strings.Repeat("a", 40), true, "invalid digest format"},
		{"short hash", "sha256:abc", true, "invalid digest format"},
		{"uppercase hex", "sha256:" + strings.Repeat("A", 64), true, "invalid digest format"},
		{"invalid chars", "sha256:" + strings.Repeat("g", 64), true, "invalid digest format"},
		{"missing colon", "sha256" + strings.Repeat("a", 64), true, "invalid digest format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDigest(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateDigest(%q) expected error containing %q, got nil", tt.input, tt.errMsg)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateDigest(%q) error = %q, want error containing %q", tt.input, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateDigest(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		errMsg  string
	}{
		// Valid cases
		{"valid uuid", "550e8400-e29b-41d4-a716-446655440000", false, ""},
		{"all digits", "12345678-1234-4234-8234-123456789012", false, ""},

		// Invalid cases - path traversal
		{"path traversal", "../etc/passwd", true, "path traversal"},

		// Invalid cases - format
		{"empty", "", true, "cannot be empty"},
		{"uppercase", "550E8400-E29B-41D4-A716-446655440000", true, "invalid UUID format"},
		{"no hyphens", "550e8400e29b41d4a716446655440000", true, "invalid UUID format"},
		{"urn prefix", "urn:uuid:550e8400-e29b-41d4-a716-446655440000", true, "invalid UUID format"},
		{"braces", "{550e8400-e29b-41d4-a716-446655440000}", true, "invalid UUID format"},
		{"too short", "550e8400-e29b-41d4-a716", true, "invalid UUID format"},
		{"trailing slash", "550e8400-e29b-41d4-a716-446655440000/", true, "invalid UUID format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateUUID(%q) expected error containing %q, got nil", tt.input, tt.errMsg)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateUUID(%q) error = %q, want error containing %q", tt.input, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("ValidateUUID(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

