package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/kyoushitsu/internal/database/chapters"
	"github.com/example/kyoushitsu/internal/entities"
)

func setupChaptersRouter(t *testing.T) (*gin.Engine, *chapters.Repository, func()) {
	db, cleanup := setupTestDB(t)

	repo := chapters.NewRepository(db.DB)
	controller := NewChaptersController(repo)

	router := gin.New()
	router.GET("/api/chapters", controller.ListChapters)
	router.POST("/api/chapters", controller.CreateChapter)
	router.PUT("/api/chapters/:id", controller.UpdateChapter)
	router.DELETE("/api/chapters/:id", controller.DeleteChapter)

	return router, repo, cleanup
}

func TestChaptersController_Create(t *testing.T) {
	router, _, cleanup := setupChaptersRouter(t)
	defer cleanup()

	body := `{"title":"Greetings","description":"Basics"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/chapters", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Chapter entities.Chapter `json:"chapter"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(t, response.Chapter.ID)
	assert.Equal(t, "Greetings", response.Chapter.Title)
}

func TestChaptersController_Create_TitleRequired(t *testing.T) {
	router, _, cleanup := setupChaptersRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/chapters", bytes.NewBufferString(`{"description":"no title"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChaptersController_Update_NotFound(t *testing.T) {
	router, _, cleanup := setupChaptersRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/chapters/999", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChaptersController_Delete_RemovesChapterContent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := chapters.NewRepository(db.DB)
	controller := NewChaptersController(repo)
	router := gin.New()
	router.DELETE("/api/chapters/:id", controller.DeleteChapter)

	chapter := seedChapter(t, db, "Doomed")
	require.NoError(t, db.DB.Create(&entities.Vocabulary{ChapterID: chapter.ID, Term: "a", Meaning: "b"}).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/chapters/%d", chapter.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.DB.Model(&entities.Vocabulary{}).Where("chapter_id = ?", chapter.ID).Count(&count)
	assert.Zero(t, count)
}
