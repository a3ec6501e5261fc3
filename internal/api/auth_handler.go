package api

import (
	"errors"
	"log"
	"net/http"

	"nfg/fitness-site/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// ShowLogin answers the sign-in page request. The admin UI renders the form
// client-side; this endpoint only confirms whether a session already exists.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if _, err := h.authService.ValidateToken(token); err == nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": true})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid login request.")
		return
	}

	token, err := h.authService.Login(c.ClientIP(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTooManyAttempts):
			abortWithError(c, http.StatusTooManyRequests, "Too many failed attempts. Try again later.")
		case errors.Is(err, service.ErrAuthenticationFailed):
			abortWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		default:
			log.Printf("ERROR: login: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Login failed.")
		}
		return
	}

	maxAge := int(h.authService.SessionTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed in."})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out."})
}
