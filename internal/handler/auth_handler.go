package handler

import (
	"errors"
	"net/http"

	"availit-backend/internal/service"
	"availit-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateCityRequest struct {
	City string `json:"city"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.authService.Register(req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, "Username already exists")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	utils.MessageResponse(c, "User registered successfully")
}

// Login handles user authentication and hands out the bearer token
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAllUsers lists every account's id, username and role
func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.authService.GetAllUsers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetCity returns the saved city for a username
func (h *AuthHandler) GetCity(c *gin.Context) {
	username := c.Param("username")

	city, err := h.authService.GetCity(username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch city")
		return
	}

	c.JSON(http.StatusOK, gin.H{"city": city})
}

// UpdateCity sets the saved city for a username
func (h *AuthHandler) UpdateCity(c *gin.Context) {
	username := c.Param("username")

	var req UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.City == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "City is required")
		return
	}

	if err := h.authService.UpdateCity(username, req.City); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update city")
		return
	}

	utils.MessageResponse(c, "City updated successfully")
}
