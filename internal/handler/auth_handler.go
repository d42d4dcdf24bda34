package handler

import (
	"net/http"

	"task_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	log     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log}
}

type obtainTokenRequest struct {
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Password    string `json:"password" form:"password"`
}

// ObtainToken exchanges phone number and password for an access/refresh pair.
func (h *AuthHandler) ObtainToken(c *gin.Context) {
	var req obtainTokenRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}

	pair, err := h.service.ObtainToken(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"access":    pair.Access,
		"refresh":   pair.Refresh,
		"user_id":   pair.UserID,
		"username":  pair.Username,
		"user_type": pair.UserType,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/token/", h.ObtainToken)
}
