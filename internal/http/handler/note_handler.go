package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

type NoteHandler struct {
	notes service.NoteServiceInterface
}

func NewNoteHandler(notes service.NoteServiceInterface) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	Title       string `json:"title" validate:"max=200"`
	Description string `json:"description" validate:"max=20000"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := accountIDFromRequest(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
		return
	}
	var req noteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeDecodeError(w, r, err, "Invalid note fields")
		return
	}
	note, err := h.notes.Create(r.Context(), ownerID, service.NoteInput{Title: req.Title, Description: req.Description})
	if err != nil {
		writeServiceError(w, r, err, "Could not create note")
		return
	}
	observability.Audit(r, "note.created", "user_id", ownerID, "note_id", note.ID)
	response.JSON(w, r, http.StatusCreated, "Note created successfully", map[string]any{"note": note})
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := accountIDFromRequest(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
		return
	}
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}
	result, err := h.notes.List(r.Context(), ownerID, pageReq)
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch notes")
		return
	}
	response.JSON(w, r, http.StatusOK, "", map[string]any{
		"notes":      result.Items,
		"pagination": paginationMeta(result),
	})
}

// ListAll serves the original fetchAllNotes path: every note the caller owns
// unless the client asks for a page explicitly.
func (h *NoteHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("page") || q.Has("page_size") {
		h.List(w, r)
		return
	}
	ownerID, ok := accountIDFromRequest(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
		return
	}
	notes, err := h.notes.ListAll(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch notes")
		return
	}
	response.JSON(w, r, http.StatusOK, "", map[string]any{"notes": notes})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	note, err := h.notes.Get(r.Context(), ownerID, id)
	if err != nil {
		writeServiceError(w, r, err, "Could not fetch note")
		return
	}
	response.JSON(w, r, http.StatusOK, "fetched the note successfully", map[string]any{"note": note})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	var req noteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeDecodeError(w, r, err, "Invalid note fields")
		return
	}
	note, err := h.notes.Update(r.Context(), ownerID, id, service.NoteInput{Title: req.Title, Description: req.Description})
	if err != nil {
		writeServiceError(w, r, err, "Could not update note")
		return
	}
	observability.Audit(r, "note.updated", "user_id", ownerID, "note_id", id)
	response.JSON(w, r, http.StatusOK, "Note updated successfully", map[string]any{"note": note})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, id, ok := h.scope(w, r)
	if !ok {
		return
	}
	if err := h.notes.Delete(r.Context(), ownerID, id); err != nil {
		writeServiceError(w, r, err, "Could not delete note")
		return
	}
	observability.Audit(r, "note.deleted", "user_id", ownerID, "note_id", id)
	response.JSON(w, r, http.StatusOK, "Note deleted successfully", nil)
}

func (h *NoteHandler) scope(w http.ResponseWriter, r *http.Request) (uint, uint, bool) {
	ownerID, ok := accountIDFromRequest(r)
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
		return 0, 0, false
	}
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid note id", nil)
		return 0, 0, false
	}
	return ownerID, id, true
}
