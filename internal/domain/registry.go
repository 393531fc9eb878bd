package domain

import "time"

// UploadState is the lifecycle state of a blob upload session.
type UploadState string

const (
	// UploadStateOpen is the initial state: the session exists but holds no content.
	UploadStateOpen UploadState = "open"
	// UploadStateFinalized is terminal: digest, length and handle are recorded.
	UploadStateFinalized UploadState = "finalized"
)

// StorageMode identifies where the bytes of a finalized blob live.
type StorageMode string

const (
	// StorageModeInline keeps the bytes inside the metadata record.
	StorageModeInline StorageMode = "inline"
	// StorageModeDelegated keeps only an identifier returned by the external network.
	StorageModeDelegated StorageMode = "delegated"
)

// BlobHandle points at stored blob bytes. Exactly one of Data or ExternalID
// is meaningful, depending on Mode.
type BlobHandle struct {
	Mode       StorageMode
	Data       []byte
	Codec      string
	ExternalID string
}

// BlobRecord is the metadata row of an upload session.
type BlobRecord struct {
	SessionID   string
	Name        string
	State       UploadState
	Digest      string
	Length      int64
	Handle      BlobHandle
	CreatedAt   time.Time
	FinalizedAt time.Time
}

// IsFinalized reports whether the record reached its terminal state.
func (r *BlobRecord) IsFinalized() bool {
	return r.State == UploadStateFinalized
}

// BlobDescriptor is the digest and length of a stored payload.
type BlobDescriptor struct {
	Digest string
	Length int64
}

// Manifest represents a manifest stored under a (name, reference) key.
type Manifest struct {
	Name      string
	Reference string
	Content   []byte
	MediaType string
	CreatedAt time.Time
	UpdatedAt time.Time
}
