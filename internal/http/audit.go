package http

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/kyoushitsu/internal/entities"
)

// AuditStore defines database operations for the audit trail.
type AuditStore interface {
	LogEvent(event *entities.AuditEvent) error
	ListEvents(limit, offset int) ([]entities.AuditEvent, int64, error)
}

type AuditController struct {
	store AuditStore
}

func NewAuditController(store AuditStore) *AuditController {
	return &AuditController{store: store}
}

// ListEvents returns paginated audit events as JSON, newest first.
// GET /api/admin/audit
func (ac *AuditController) ListEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	events, total, err := ac.store.ListEvents(limit, offset)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// AuditMiddleware records every mutating API request after its handler runs.
// Reads are not logged, and neither are the anonymous scoring submissions.
// A failed write is logged locally but never fails the request itself.
func AuditMiddleware(store AuditStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		if !shouldAudit(method, path) {
			c.Next()
			return
		}

		c.Next()

		code := c.Writer.Status()
		status := entities.AuditStatusSuccess
		if code >= 400 {
			status = entities.AuditStatusFailed
		}

		event := &entities.AuditEvent{
			EventType: eventTypeFor(path),
			Action:    actionFor(method, path),
			Method:    method,
			Path:      path,
			Status:    status,
			HTTPCode:  code,
			IPAddress: c.ClientIP(),
			CreatedAt: time.Now(),
		}
		if err := store.LogEvent(event); err != nil {
			log.Printf("Failed to record audit event for %s %s: %v", method, path, err)
		}
	}
}

func shouldAudit(method, path string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	if !strings.HasPrefix(path, "/api/") {
		return false
	}
	// Scoring submissions are anonymous learner traffic, not admin actions.
	if strings.HasPrefix(path, "/api/submit-") {
		return false
	}
	return true
}

func eventTypeFor(path string) entities.AuditEventType {
	if path == "/api/login" || path == "/api/logout" {
		return entities.AuditEventAuth
	}
	return entities.AuditEventContent
}

// actionFor names the audited action from the route shape, e.g.
// "chapter_create", "grammar_reorder", "login".
func actionFor(method, path string) string {
	switch path {
	case "/api/login":
		return "login"
	case "/api/logout":
		return "logout"
	case "/api/grammar/reorder":
		return "grammar_reorder"
	}

	segments := strings.Split(strings.TrimPrefix(path, "/api/"), "/")
	resource := resourceName(segments[0])

	switch method {
	case http.MethodPost:
		return resource + "_create"
	case http.MethodPut, http.MethodPatch:
		return resource + "_update"
	case http.MethodDelete:
		return resource + "_delete"
	}
	return resource + "_" + strings.ToLower(method)
}

func resourceName(segment string) string {
	switch segment {
	case "chapters":
		return "chapter"
	case "quizzes":
		return "quiz"
	case "vocabulary", "vocabularies":
		return "vocabulary"
	case "reading":
		return "reading_passage"
	case "listening":
		return "listening_exercise"
	}
	return segment
}
