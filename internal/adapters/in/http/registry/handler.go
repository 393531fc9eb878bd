// Package registry implements the HTTP adapter for the registry API.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/adapters/dto"
	"github.com/bnema/walrus-registry/internal/boundaries/in"
	"github.com/bnema/walrus-registry/internal/domain"
	"github.com/bnema/walrus-registry/pkg/digest"
	"github.com/bnema/walrus-registry/pkg/validation"
)

const (
	// DefaultMaxManifestSize limits manifest uploads to 4MB.
	DefaultMaxManifestSize = 4 * 1024 * 1024
	// DefaultMaxBlobSize limits monolithic blob uploads to 512MB.
	DefaultMaxBlobSize = 512 * 1024 * 1024

	apiVersionHeader = "Docker-Distribution-API-Version"
	apiVersion       = "registry/2.0"
	uploadsSegment   = "/blobs/uploads/"
)

// Options tunes request handling.
type Options struct {
	// VerifyDigest rejects a completed upload whose ?digest= differs from the
	// digest computed over the body.
	VerifyDigest    bool
	MaxManifestSize int64
	MaxBlobSize     int64
}

// Handler implements the HTTP handler for the registry API v2.
type Handler struct {
	registrySvc in.RegistryService
	opts        Options
	log         zerowrap.Logger
}

// NewHandler creates a new registry HTTP handler.
func NewHandler(registrySvc in.RegistryService, opts Options, log zerowrap.Logger) *Handler {
	if opts.MaxManifestSize <= 0 {
		opts.MaxManifestSize = DefaultMaxManifestSize
	}
	if opts.MaxBlobSize <= 0 {
		opts.MaxBlobSize = DefaultMaxBlobSize
	}
	return &Handler{
		registrySvc: registrySvc,
		opts:        opts,
		log:         log,
	}
}

// RegisterRoutes registers the registry routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/v2/", h)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "registry",
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
	r = r.WithContext(ctx)

	path := r.URL.Path
	w.Header().Set(apiVersionHeader, apiVersion)

	switch {
	case path == "/v2/" || path == "/v2":
		h.handleBase(w, r)
	case path == "/v2/_catalog":
		h.handleCatalog(w, r)
	case strings.Contains(path, uploadsSegment):
		h.handleBlobUploadRoutes(w, r)
	case hasKind(path, "manifests"):
		h.handleManifestRoutes(w, r)
	case hasKind(path, "blobs"):
		h.handleBlobRoutes(w, r)
	case strings.HasSuffix(path, "/tags/list"):
		h.handleTagListRoutes(w, r)
	default:
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeNameUnknown, "route not found")
	}
}

// splitPath splits /v2/<name>/<kind>/<last> into name and last.
func splitPath(path, kind string) (name, last string, ok bool) {
	rest := strings.TrimPrefix(path, "/v2/")
	idx := strings.LastIndex(rest, "/"+kind+"/")
	if idx <= 0 {
		return "", "", false
	}
	name = rest[:idx]
	last = rest[idx+len(kind)+2:]
	if last == "" || strings.Contains(last, "/") {
		return "", "", false
	}
	return name, last, true
}

func hasKind(path, kind string) bool {
	_, _, ok := splitPath(path, kind)
	return ok
}

func (h *Handler) handleManifestRoutes(w http.ResponseWriter, r *http.Request) {
	name, reference, ok := splitPath(r.URL.Path, "manifests")
	if !ok {
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeManifestUnknown, "route not found")
		return
	}
	if err := validation.ValidateRepositoryName(name); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeNameInvalid, err.Error())
		return
	}
	if err := validation.ValidateReference(reference); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeManifestInvalid, err.Error())
		return
	}

	r.SetPathValue("name", name)
	r.SetPathValue("reference", reference)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.handleGetManifest(w, r)
	case http.MethodPut:
		h.handlePutManifest(w, r)
	default:
		h.sendMethodNotAllowed(w)
	}
}

func (h *Handler) handleBlobRoutes(w http.ResponseWriter, r *http.Request) {
	name, dgst, ok := splitPath(r.URL.Path, "blobs")
	if !ok {
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeBlobUnknown, "route not found")
		return
	}
	if err := validation.ValidateRepositoryName(name); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeNameInvalid, err.Error())
		return
	}
	if err := validation.ValidateDigest(dgst); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeDigestInvalid, err.Error())
		return
	}

	r.SetPathValue("name", name)
	r.SetPathValue("digest", dgst)

	switch r.Method {
	case http.MethodGet:
		h.handleGetBlob(w, r)
	case http.MethodHead:
		h.handleHeadBlob(w, r)
	default:
		h.sendMethodNotAllowed(w)
	}
}

func (h *Handler) handleBlobUploadRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v2/")
	idx := strings.LastIndex(rest, uploadsSegment)
	if idx <= 0 {
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeBlobUploadUnknown, "route not found")
		return
	}
	name := rest[:idx]
	sessionID := rest[idx+len(uploadsSegment):]

	if err := validation.ValidateRepositoryName(name); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeNameInvalid, err.Error())
		return
	}
	r.SetPathValue("name", name)

	if sessionID == "" {
		if r.Method != http.MethodPost {
			h.sendMethodNotAllowed(w)
			return
		}
		h.handleStartBlobUpload(w, r)
		return
	}

	if err := validation.ValidateUUID(sessionID); err != nil {
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeBlobUploadUnknown, err.Error())
		return
	}
	r.SetPathValue("uuid", sessionID)

	switch r.Method {
	case http.MethodGet:
		h.handleGetUpload(w, r)
	case http.MethodPut:
		h.handleCompleteUpload(w, r)
	case http.MethodPatch:
		h.sendRegistryError(w, http.StatusMethodNotAllowed, dto.ErrCodeUnsupported, "chunked uploads are not supported; send the whole blob with PUT")
	default:
		h.sendMethodNotAllowed(w)
	}
}

func (h *Handler) handleTagListRoutes(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v2/"), "/tags/list")
	if err := validation.ValidateRepositoryName(name); err != nil {
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeNameInvalid, err.Error())
		return
	}
	r.SetPathValue("name", name)

	if r.Method != http.MethodGet {
		h.sendMethodNotAllowed(w)
		return
	}
	h.handleListTags(w, r)
}

func (h *Handler) handleBase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		h.sendMethodNotAllowed(w)
		return
	}
	h.sendJSON(w, r, http.StatusOK, dto.BaseResponse{Message: "OCI Registry v2"})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendMethodNotAllowed(w)
		return
	}

	repos, err := h.registrySvc.ListRepositories(r.Context())
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeNameUnknown)
		return
	}
	h.sendJSON(w, r, http.StatusOK, dto.CatalogResponse{Repositories: repos})
}

func (h *Handler) handleGetManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)
	name := r.PathValue("name")
	reference := r.PathValue("reference")

	log.Debug().Str("name", name).Str("reference", reference).Msg("GET manifest")

	m, err := h.registrySvc.GetManifest(ctx, name, reference)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeManifestUnknown)
		return
	}

	w.Header().Set("Content-Type", m.MediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(m.Content)))
	w.Header().Set("Docker-Content-Digest", digest.FromBytes(m.Content))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodGet {
		_, _ = w.Write(m.Content)
	}
}

func (h *Handler) handlePutManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)
	name := r.PathValue("name")
	reference := r.PathValue("reference")

	data, ok := h.readBody(w, r, h.opts.MaxManifestSize, dto.ErrCodeManifestInvalid)
	if !ok {
		return
	}

	log.Debug().Str("name", name).Str("reference", reference).Int(zerowrap.FieldSize, len(data)).Msg("PUT manifest")

	if err := h.registrySvc.PutManifest(ctx, name, reference, data); err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeManifestUnknown)
		return
	}

	w.Header().Set("Docker-Content-Digest", digest.FromBytes(data))
	w.Header().Set("Location", fmt.Sprintf("/v2/%s/manifests/%s", name, reference))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleGetBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)
	name := r.PathValue("name")
	dgst := r.PathValue("digest")

	log.Debug().Str("name", name).Str("digest", dgst).Msg("GET blob")

	data, err := h.registrySvc.GetBlob(ctx, name, dgst)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeBlobUnknown)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Docker-Content-Digest", dgst)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleHeadBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")
	dgst := r.PathValue("digest")

	desc, err := h.registrySvc.StatBlob(ctx, name, dgst)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeBlobUnknown)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(desc.Length, 10))
	w.Header().Set("Docker-Content-Digest", desc.Digest)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleStartBlobUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	sessionID, err := h.registrySvc.BeginUpload(ctx, name)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeBlobUploadUnknown)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v2/%s/blobs/uploads/%s", name, sessionID))
	w.Header().Set("Docker-Upload-UUID", sessionID)
	w.Header().Set("Range", "0-0")
	h.sendJSON(w, r, http.StatusAccepted, dto.UploadStartedResponse{UUID: sessionID})
}

func (h *Handler) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")
	sessionID := r.PathValue("uuid")

	record, err := h.registrySvc.GetUpload(ctx, sessionID)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeBlobUploadUnknown)
		return
	}
	if record.Name != name || record.IsFinalized() {
		h.sendRegistryError(w, http.StatusNotFound, dto.ErrCodeBlobUploadUnknown, "upload session not found")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v2/%s/blobs/uploads/%s", name, sessionID))
	w.Header().Set("Docker-Upload-UUID", sessionID)
	w.Header().Set("Range", "0-0")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCompleteUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := zerowrap.FromCtx(ctx)
	name := r.PathValue("name")
	sessionID := r.PathValue("uuid")
	expected := r.URL.Query().Get("digest")

	if expected != "" {
		if err := validation.ValidateDigest(expected); err != nil {
			h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeDigestInvalid, err.Error())
			return
		}
	}

	data, ok := h.readBody(w, r, h.opts.MaxBlobSize, dto.ErrCodeBlobUploadInvalid)
	if !ok {
		return
	}

	if h.opts.VerifyDigest && expected != "" && !digest.Verify(data, expected) {
		log.Warn().Str("uuid", sessionID).Str("expected", expected).Msg("upload digest mismatch")
		h.sendRegistryError(w, http.StatusBadRequest, dto.ErrCodeDigestInvalid,
			fmt.Sprintf("%s: computed %s", domain.ErrDigestMismatch, digest.FromBytes(data)))
		return
	}

	desc, err := h.registrySvc.CompleteUpload(ctx, sessionID, name, data)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeBlobUploadUnknown)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v2/%s/blobs/%s", name, desc.Digest))
	w.Header().Set("Docker-Content-Digest", desc.Digest)
	w.Header().Set("Docker-Upload-UUID", sessionID)
	h.sendJSON(w, r, http.StatusCreated, dto.UploadCompletedResponse{
		UUID:   sessionID,
		Digest: desc.Digest,
		Length: desc.Length,
	})
}

func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	tags, err := h.registrySvc.ListReferences(ctx, name)
	if err != nil {
		h.sendServiceError(w, r, err, dto.ErrCodeNameUnknown)
		return
	}
	h.sendJSON(w, r, http.StatusOK, dto.TagListResponse{Name: name, Tags: tags})
}

// readBody reads at most limit bytes. On failure it writes the error
// response itself and returns false.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request, limit int64, invalidCode string) ([]byte, bool) {
	log := zerowrap.FromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Int64("max_size", limit).Msg("request body too large")
			h.sendRegistryError(w, http.StatusRequestEntityTooLarge, dto.ErrCodeSizeInvalid,
				fmt.Sprintf("body exceeds maximum size of %d bytes", limit))
			return nil, false
		}
		log.Warn().Err(err).Msg("failed to read request body")
		h.sendRegistryError(w, http.StatusBadRequest, invalidCode, "failed to read request body")
		return nil, false
	}
	return data, true
}

// sendServiceError maps a service error onto a registry error response.
// notFoundCode is used when err denotes a missing resource.
func (h *Handler) sendServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundCode string) {
	log := zerowrap.FromCtx(r.Context())

	switch {
	case domain.IsMissing(err):
		log.Debug().Err(err).Msg("resource not found")
		h.sendRegistryError(w, http.StatusNotFound, notFoundCode, err.Error())
	case domain.IsUnavailable(err):
		log.Warn().Err(err).Msg("registry temporarily unavailable")
		w.Header().Set("Retry-After", "1")
		h.sendRegistryError(w, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "service temporarily unavailable")
	default:
		log.Error().Err(err).Msg("registry request failed")
		h.sendRegistryError(w, http.StatusInternalServerError, dto.ErrCodeUnknown, "internal server error")
	}
}

// sendRegistryError sends a registry v2 formatted error response.
func (h *Handler) sendRegistryError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(apiVersionHeader, apiVersion)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.NewRegistryError(code, message))
}

func (h *Handler) sendMethodNotAllowed(w http.ResponseWriter) {
	h.sendRegistryError(w, http.StatusMethodNotAllowed, dto.ErrCodeUnsupported, "method not allowed")
}

func (h *Handler) sendJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log := zerowrap.FromCtx(r.Context())
		log.Error().Err(err).Msg("failed to encode response")
	}
}
