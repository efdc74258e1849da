package handlers

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ampta/resumecraft-backend/internal/middleware"
	"github.com/ampta/resumecraft-backend/internal/models"
	"github.com/ampta/resumecraft-backend/internal/services"
)

const maxUploadSize = 10 << 20 // 10MB

type ResumeHandler struct {
	svc *services.ResumeService
}

func NewResumeHandler(svc *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Create handles POST /api/resumes.
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid request body"})
		return
	}

	resume, err := h.svc.Create(r.Context(), p, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resume)
}

// List handles GET /api/resumes.
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	resumes, err := h.svc.List(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}

// Get handles GET /api/resumes/{id}.
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	resume, err := h.svc.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// Update handles PUT /api/resumes/{id}. Every mutable field is replaced with
// the supplied state; the owner never changes.
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	var update models.Resume
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid request body"})
		return
	}

	resume, err := h.svc.Update(r.Context(), p, chi.URLParam(r, "id"), &update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// Delete handles DELETE /api/resumes/{id}.
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	if err := h.svc.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

// UploadImages handles PUT /api/resumes/{id}/upload-images with multipart
// parts "thumbnail" and "profileImage", both optional but at least one
// required.
func (h *ResumeHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid multipart form"})
		return
	}

	thumbnail, err := formFileBytes(r, "thumbnail")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Failed to read thumbnail"})
		return
	}
	profileImage, err := formFileBytes(r, "profileImage")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Failed to read profileImage"})
		return
	}

	links, err := h.svc.UploadImages(r.Context(), p, chi.URLParam(r, "id"), thumbnail, profileImage)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]string{"message": "Images uploaded successfully"}
	for k, v := range links {
		resp[k] = v
	}
	writeJSON(w, http.StatusOK, resp)
}

// UploadImage handles POST /api/auth/upload-image: a standalone image upload
// returning the public URL.
func (h *ResumeHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "Invalid multipart form"})
		return
	}

	data, err := formFileBytes(r, "image")
	if err != nil || data == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_argument", Message: "No image provided"})
		return
	}

	url, err := h.svc.UploadImage(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// formFileBytes reads an optional multipart file part; a missing part
// returns (nil, nil).
func formFileBytes(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}
	defer file.Close()
	return io.ReadAll(file)
}
