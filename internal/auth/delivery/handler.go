package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palloncino/storage-server-app-01/internal/auth/dto"
	"github.com/palloncino/storage-server-app-01/internal/auth/usecase"
	"github.com/palloncino/storage-server-app-01/pkg/httputil"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login authenticates a user and issues a bearer token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request. Please check your JSON format."})
		return
	}

	token, user, err := h.authUsecase.Login(&req)
	if err != nil {
		httputil.RespondError(c, err, "Error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Authentication successful!",
		"token":   token,
		"user":    user,
	})
}

// VerifyToken checks a token handed over in the body and returns its subject
// POST /api/auth/verify-token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req dto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}

	user, err := h.authUsecase.VerifyToken(req.Token)
	if err != nil {
		httputil.RespondError(c, err, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token verified successfully",
		"user":    user,
	})
}

// Signup registers a new account
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request. Please check your JSON format."})
		return
	}

	user, err := h.authUsecase.Signup(&req)
	if err != nil {
		httputil.RespondError(c, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully!",
		"user":    user,
	})
}

