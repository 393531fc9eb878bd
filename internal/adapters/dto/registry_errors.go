package dto

// Registry error codes used in RegistryErrorItem.Code.
const (
	ErrCodeBlobUnknown       = "BLOB_UNKNOWN"
	ErrCodeBlobUploadUnknown = "BLOB_UPLOAD_UNKNOWN"
	ErrCodeBlobUploadInvalid = "BLOB_UPLOAD_INVALID"
	ErrCodeDigestInvalid     = "DIGEST_INVALID"
	ErrCodeManifestUnknown   = "MANIFEST_UNKNOWN"
	ErrCodeManifestInvalid   = "MANIFEST_INVALID"
	ErrCodeNameInvalid       = "NAME_INVALID"
	ErrCodeNameUnknown       = "NAME_UNKNOWN"
	ErrCodeSizeInvalid       = "SIZE_INVALID"
	ErrCodeUnsupported       = "UNSUPPORTED"
	ErrCodeTooManyRequests   = "TOOMANYREQUESTS"
	ErrCodeUnavailable       = "UNAVAILABLE"
	ErrCodeUnknown           = "UNKNOWN"
)

// RegistryErrorItem represents an individual registry error.
type RegistryErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegistryErrorResponse represents registry errors.
type RegistryErrorResponse struct {
	Errors []RegistryErrorItem `json:"errors"`
}

// NewRegistryError builds a single-error response.
func NewRegistryError(code, message string) RegistryErrorResponse {
	return RegistryErrorResponse{Errors: []RegistryErrorItem{{Code: code, Message: message}}}
}
