package handler

import (
	"net/http"

	"grainmarket-be/internal/user"
	"grainmarket-be/internal/utils"
	"grainmarket-be/internal/validation"

	"github.com/gin-gonic/gin"
)

type authResponse struct {
	Token string `json:"token"`
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	token, u, err := h.UserSvc.Register(c.Request.Context(), req.Email, req.Password, user.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Token: token,
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	token, u, err := h.UserSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Token: token,
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	})
}

// Me returns the authenticated caller's identity record.
func (h *Handler) Me(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	u, err := h.UserSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"role":       string(u.Role),
		"created_at": u.CreatedAt,
	})
}
