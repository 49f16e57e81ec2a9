package handlers

import (
	"log"
	"net/http"
	"restaurant_menu/internal/services"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "admin_session"

type AuthHandler struct {
	authService services.AuthService
	cookieTTL   int
}

func NewAuthHandler(authService services.AuthService, cookieTTL int) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.authService.Login(username, password)
	if err != nil {
		log.Printf("Failed admin login for %q: %v", username, err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.SetCookie(sessionCookie, token, h.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	if err := h.authService.Logout(token); err != nil {
		log.Printf("Error ending admin session: %v", err)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired validates the admin session cookie. When authentication is
// disabled (no admin password configured) every request passes through.
func AuthRequired(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authService.Enabled() {
			c.Next()
			return
		}

		token, err := c.Cookie(sessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if _, err := authService.Validate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
