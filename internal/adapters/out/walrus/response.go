package walrus

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// storeResult is one entry of a store response. The CLI reports either a
// freshly registered blob or one the network already certified.
type storeResult struct {
	NewlyCreated *struct {
		BlobObject struct {
			BlobID string `json:"blobId"`
		} `json:"blobObject"`
	} `json:"newlyCreated"`
	AlreadyCertified *struct {
		BlobID string `json:"blobId"`
	} `json:"alreadyCertified"`
}

// storeEntry is the per-file wrapper used when the CLI answers with an array.
type storeEntry struct {
	BlobStoreResult *storeResult `json:"blobStoreResult"`
	Path            string       `json:"path,omitempty"`
}

type readResponse struct {
	BlobID string  `json:"blobId,omitempty"`
	Blob   *string `json:"blob"`
}

var errMissingBlobID = errors.New("response carries no blob id")

// parseStoreResponse extracts the blob id from the JSON printed by "store".
// Both the bare object and the array form are accepted.
func parseStoreResponse(out []byte) (string, error) {
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return "", fmt.Errorf("empty store response")
	}

	if out[0] == '[' {
		var entries []storeEntry
		if err := json.Unmarshal(out, &entries); err != nil {
			return "", fmt.Errorf("malformed store response: %w", err)
		}
		if len(entries) == 0 {
			return "", fmt.Errorf("store response has no entries")
		}
		if entries[0].BlobStoreResult == nil {
			return "", errMissingBlobID
		}
		return entries[0].BlobStoreResult.blobID()
	}

	var result storeResult
	if err := json.Unmarshal(out, &result); err != nil {
		return "", fmt.Errorf("malformed store response: %w", err)
	}
	return result.blobID()
}

func (r *storeResult) blobID() (string, error) {
	switch {
	case r.NewlyCreated != nil && r.NewlyCreated.BlobObject.BlobID != "":
		return r.NewlyCreated.BlobObject.BlobID, nil
	case r.AlreadyCertified != nil && r.AlreadyCertified.BlobID != "":
		return r.AlreadyCertified.BlobID, nil
	default:
		return "", errMissingBlobID
	}
}

// parseReadResponse decodes the base64 payload printed by "read".
func parseReadResponse(out []byte) ([]byte, error) {
	var resp readResponse
	if err := json.Unmarshal(bytes.TrimSpace(out), &resp); err != nil {
		return nil, fmt.Errorf("malformed read response: %w", err)
	}
	if resp.Blob == nil {
		return nil, fmt.Errorf("read response has no blob field")
	}

	data, err := base64.StdEncoding.DecodeString(*resp.Blob)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in read response: %w", err)
	}
	return data, nil
}
