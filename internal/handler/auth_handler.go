package handler

import (
	"net/http"

	"gameshelf/backend/internal/config"
	"gameshelf/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// LoginInput defines the structure for admin login. There are no user
// accounts; the single admin password is configured at deploy time.
type LoginInput struct {
	Password string `json:"password" binding:"required" example:"password123"`
}

// AdminLogin godoc
// @Summary      Log in as admin
// @Description  Checks the admin password and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Admin Credentials"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid password"
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/login [post]
func AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if config.AppConfig.AdminPasswordHash == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin login is not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := jwt.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
