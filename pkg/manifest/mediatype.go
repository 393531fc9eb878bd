// Package manifest inspects stored manifest documents. Content is kept as
// opaque bytes; nothing here is required for storage, only for serving.
package manifest

import (
	"encoding/json"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// MediaTypeDockerManifest is the Docker distribution schema 2 type, which
// image-spec does not export.
const MediaTypeDockerManifest = "application/vnd.docker.distribution.manifest.v2+json"

// DefaultMediaType is served when the content does not announce a type.
const DefaultMediaType = ocispec.MediaTypeImageManifest

// envelope holds the fields used to guess the type of a manifest.
type envelope struct {
	SchemaVersion int                 `json:"schemaVersion"`
	MediaType     string              `json:"mediaType,omitempty"`
	Config        *ocispec.Descriptor `json:"config,omitempty"`
	Layers        []json.RawMessage   `json:"layers,omitempty"`
	Manifests     []json.RawMessage   `json:"manifests,omitempty"`
}

// MediaType returns the media type for content. An explicit mediaType field
// wins; otherwise the shape of the document decides. Content that is not a
// JSON object falls back to DefaultMediaType.
func MediaType(content []byte) string {
	var env envelope
	if err := json.Unmarshal(content, &env); err != nil {
		return DefaultMediaType
	}

	if env.MediaType != "" {
		return env.MediaType
	}

	switch {
	case env.Manifests != nil:
		return ocispec.MediaTypeImageIndex
	case env.Config != nil || env.Layers != nil:
		return ocispec.MediaTypeImageManifest
	default:
		return DefaultMediaType
	}
}
