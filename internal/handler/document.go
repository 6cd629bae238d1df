package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mithaqhq/mithaq/internal/ctxkeys"
	"github.com/mithaqhq/mithaq/internal/repository"
	"github.com/mithaqhq/mithaq/internal/service"
	"github.com/mithaqhq/mithaq/internal/validation"
)

// maxUploadMemory bounds how much of a multipart body is held in memory;
// the rest spills to temp files.
const maxUploadMemory = 10 << 20

type DocumentHandler struct {
	documentService *service.DocumentService
}

func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	docs, err := h.documentService.Documents(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to load documents", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(r.Context(), user.ID, file, header)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidFile) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("failed to upload document", "error", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to upload document")
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	docID := r.PathValue("id")

	err := h.documentService.Delete(r.Context(), user.ID, docID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete document", "error", err, "document_id", docID)
		writeError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
