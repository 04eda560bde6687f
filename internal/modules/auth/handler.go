package auth

import (
	"errors"
	"net/http"
	"strconv"

	"leadcrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication and agent management
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated endpoints. loginLimiter is
// the per-IP rate limit applied to /login only.
func (h *Handler) RegisterPublicRoutes(auth *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	auth.GET("/check-admin", h.CheckAdmin)
	auth.POST("/register-admin", h.RegisterAdmin)
	if loginLimiter != nil {
		auth.POST("/login", loginLimiter, h.Login)
	} else {
		auth.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes mounts the self-service profile endpoints.
func (h *Handler) RegisterProtectedRoutes(auth *gin.RouterGroup) {
	auth.GET("/profile", h.GetProfile)
	auth.PUT("/profile/update", h.UpdateProfile)
}

// RegisterAdminRoutes mounts agent management, admin only.
func (h *Handler) RegisterAdminRoutes(auth *gin.RouterGroup) {
	auth.POST("", h.CreateAgent)
	auth.GET("", h.ListAgents)
	auth.GET("/:id", h.GetAgent)
	auth.PUT("/:id", h.UpdateAgent)
	auth.DELETE("/:id", h.DeleteAgent)
}

func (h *Handler) CheckAdmin(c *gin.Context) {
	exists, err := h.service.AdminExists(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CHECK_FAILED", "Failed to check admin account")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exists": exists})
}

func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAdminExists) {
			response.Error(c, http.StatusConflict, "ADMIN_EXISTS", "Admin account already exists. Only one admin is allowed.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to create admin account")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already in use")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) CreateAgent(c *gin.Context) {
	var req CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.CreateAgent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrAdminExists) {
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create agent")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.service.ListAgents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list agents")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"agents": agents})
}

func (h *Handler) GetAgent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetAgent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Agent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get agent")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"agent": user})
}

func (h *Handler) UpdateAgent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateAgent(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrAgentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Agent not found")
		case errors.Is(err, ErrAdminExists):
			response.Error(c, http.StatusConflict, "ADMIN_EXISTS", "Admin account already exists. Only one admin is allowed.")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email is already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update agent")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"agent": user})
}

func (h *Handler) DeleteAgent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAgent(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Agent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete agent")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}
