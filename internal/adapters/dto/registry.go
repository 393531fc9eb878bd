package dto

// BaseResponse is returned by the /v2/ version check.
type BaseResponse struct {
	Message string `json:"message"`
}

// UploadStartedResponse is returned when an upload session is opened.
type UploadStartedResponse struct {
	UUID string `json:"uuid"`
}

// UploadCompletedResponse is returned when an upload session is finalized.
type UploadCompletedResponse struct {
	UUID   string `json:"uuid"`
	Digest string `json:"digest"`
	Length int64  `json:"length"`
}

// TagListResponse represents registry tag list response.
type TagListResponse struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// CatalogResponse lists repositories that hold at least one manifest.
type CatalogResponse struct {
	Repositories []string `json:"repositories"`
}
