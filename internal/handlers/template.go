package handlers

import (
	"net/http"

	"github.com/ampta/resumecraft-backend/internal/middleware"
	"github.com/ampta/resumecraft-backend/internal/services"
)

type TemplateHandler struct {
	svc *services.TemplateService
}

func NewTemplateHandler(svc *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// GetTemplates handles GET /api/templates.
func (h *TemplateHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "missing session"})
		return
	}

	access, err := h.svc.GetTemplates(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, access)
}
