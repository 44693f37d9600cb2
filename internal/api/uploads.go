package api

import (
	"net/http"

	"decorcms-backend/internal/uploads"
)

type UploadHandler struct {
	signer        *uploads.Signer
	defaultFolder string
}

func NewUploadHandler(signer *uploads.Signer, defaultFolder string) *UploadHandler {
	return &UploadHandler{
		signer:        signer,
		defaultFolder: defaultFolder,
	}
}

// Signature issues a signed parameter set authorizing one direct-to-provider
// media upload. Admin-only; the provider secret never leaves the server.
func (h *UploadHandler) Signature(w http.ResponseWriter, r *http.Request) {
	resourceType := r.URL.Query().Get("resource_type")
	if resourceType == "" {
		resourceType = "image"
	}
	if resourceType != "image" && resourceType != "video" {
		writeError(w, http.StatusBadRequest, "resource_type must be image or video")
		return
	}

	folder := r.URL.Query().Get("folder")
	if folder == "" {
		folder = h.defaultFolder
	}

	authorization, err := h.signer.Sign(folder, resourceType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to sign upload request")
		return
	}

	writeJSON(w, http.StatusOK, authorization)
}
