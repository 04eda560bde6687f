package note

import (
	"errors"
	"net/http"
	"strconv"

	"leadcrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notes := r.Group("/notes")
	{
		notes.POST("", h.Create)
		notes.GET("/lead/:leadId", h.ListByLead)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Note content and lead ID are required")
		return
	}

	n, err := h.service.Create(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyContent):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Note content is required")
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create note")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"note": n})
}

func (h *Handler) ListByLead(c *gin.Context) {
	leadID, err := strconv.ParseInt(c.Param("leadId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	notes, err := h.service.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notes")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Note content is required")
		return
	}

	n, err := h.service.Update(c.Request.Context(), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.writeNoteError(c, err, "UPDATE_FAILED", "Failed to update note")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"note": n})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.writeNoteError(c, err, "DELETE_FAILED", "Failed to delete note")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func (h *Handler) writeNoteError(c *gin.Context, err error, code, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Note content is required")
	case errors.Is(err, ErrNoteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Note not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only modify your own notes")
	default:
		response.Error(c, http.StatusInternalServerError, code, fallback)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid note ID")
		return 0, false
	}
	return id, true
}
