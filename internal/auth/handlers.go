package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles the login/logout endpoints.
type Controller struct {
	service  *Service
	sessions *SessionManager
}

// NewController creates the auth controller.
func NewController(service *Service, sessions *SessionManager) *Controller {
	return &Controller{service: service, sessions: sessions}
}

// RegisterRoutes registers the auth endpoints on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", ac.Login)
	router.GET("/api/logout", ac.Logout)
	router.POST("/api/logout", ac.Logout)
}

// LoginRequest is the credentials payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates the admin credentials and grants a session.
// POST /api/login
func (ac *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	if err := ac.service.Authenticate(req.Username, req.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
		return
	}

	if err := ac.sessions.CreateSession(c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout revokes the session immediately. Browser GETs are redirected back
// to the login page; API POSTs get a JSON acknowledgement.
// GET|POST /api/logout
func (ac *Controller) Logout(c *gin.Context) {
	if err := ac.sessions.DestroySession(c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to destroy session"})
		return
	}

	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
