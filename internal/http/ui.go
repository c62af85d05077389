package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/example/kyoushitsu/internal/auth"
)

// UIController serves the pre-built HTML pages. The frontend is plain static
// files; all dynamic behavior goes through the JSON API.
type UIController struct {
	staticPath string
	sessions   *auth.SessionManager
}

func NewUIController(staticPath string, sessions *auth.SessionManager) *UIController {
	return &UIController{
		staticPath: staticPath,
		sessions:   sessions,
	}
}

func (controller *UIController) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(controller.staticPath, name))
	}
}

// LoginPage serves the login form, or skips it when the visitor already
// holds an admin session.
// GET /login
func (controller *UIController) LoginPage(c *gin.Context) {
	if controller.sessions.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, auth.SanitizeRedirectPath(c.Query("next")))
		return
	}
	c.File(filepath.Join(controller.staticPath, "login.html"))
}

// RegisterRoutes registers the public and admin page routes. Admin pages sit
// behind the redirecting session guard.
func (controller *UIController) RegisterRoutes(router *gin.Engine, m *auth.Middleware) {
	router.GET("/", controller.page("index.html"))
	router.GET("/quiz", controller.page("quiz.html"))
	router.GET("/study", controller.page("study.html"))
	router.GET("/login", controller.LoginPage)

	admin := router.Group("/", m.RequirePage())
	admin.GET("/dashboard", controller.page("dashboard.html"))
	admin.GET("/panel-vocabulary", controller.page("panel-vocabulary.html"))
	admin.GET("/panel-grammar", controller.page("panel-grammar.html"))
	admin.GET("/create-quiz", controller.page("create-quiz.html"))
	admin.GET("/panel-reading", controller.page("panel-reading.html"))
	admin.GET("/panel-listening", controller.page("panel-listening.html"))
}
