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

	"github.com/example/kyoushitsu/internal/database/grammar"
	"github.com/example/kyoushitsu/internal/entities"
)

func setupGrammarRouter(t *testing.T) (*gin.Engine, *grammar.Repository, func()) {
	db, cleanup := setupTestDB(t)

	repo := grammar.NewRepository(db.DB)
	controller := NewGrammarController(repo)

	router := gin.New()
	router.GET("/api/grammar/:chapterId", controller.ListByChapter)
	router.GET("/api/grammar/entry/:id", controller.GetEntry)
	router.POST("/api/grammar", controller.CreateGrammar)
	router.POST("/api/grammar/reorder", controller.Reorder)
	router.PUT("/api/grammar/:id", controller.UpdateGrammar)
	router.DELETE("/api/grammar/:id", controller.DeleteGrammar)

	return router, repo, cleanup
}

func TestGrammarController_Create_AppendsAtEnd(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := grammar.NewRepository(db.DB)
	controller := NewGrammarController(repo)
	router := gin.New()
	router.POST("/api/grammar", controller.CreateGrammar)

	chapter := seedChapter(t, db, "Chapter 1")

	for i, want := range []int{0, 1, 2} {
		body := fmt.Sprintf(`{"chapter_id":%d,"pattern":"pattern %d"}`, chapter.ID, i)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/grammar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			Pattern entities.GrammarPattern `json:"pattern"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, want, response.Pattern.SortOrder)
	}
}

func TestGrammarController_Reorder_EmptyListIsBadRequest(t *testing.T) {
	router, _, cleanup := setupGrammarRouter(t)
	defer cleanup()

	body := `{"chapterId":1,"orderedIds":[]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/grammar/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGrammarController_Reorder_RewritesListingOrder(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := grammar.NewRepository(db.DB)
	controller := NewGrammarController(repo)
	router := gin.New()
	router.GET("/api/grammar/:chapterId", controller.ListByChapter)
	router.POST("/api/grammar/reorder", controller.Reorder)

	chapter := seedChapter(t, db, "Chapter 1")
	first := &entities.GrammarPattern{ChapterID: chapter.ID, Pattern: "first"}
	second := &entities.GrammarPattern{ChapterID: chapter.ID, Pattern: "second"}
	require.NoError(t, repo.Append(first))
	require.NoError(t, repo.Append(second))

	body := fmt.Sprintf(`{"chapterId":%d,"orderedIds":[%d,%d]}`, chapter.ID, second.ID, first.ID)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/grammar/reorder", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", fmt.Sprintf("/api/grammar/%d", chapter.ID), nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Patterns []entities.GrammarPattern `json:"patterns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Patterns, 2)
	assert.Equal(t, "second", response.Patterns[0].Pattern)
	assert.Equal(t, "first", response.Patterns[1].Pattern)
}

func TestGrammarController_GetEntry_NotFound(t *testing.T) {
	router, _, cleanup := setupGrammarRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/grammar/entry/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGrammarController_Update_NormalizesNilImageURLs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := grammar.NewRepository(db.DB)
	controller := NewGrammarController(repo)
	router := gin.New()
	router.PUT("/api/grammar/:id", controller.UpdateGrammar)

	chapter := seedChapter(t, db, "Chapter 1")
	pattern := &entities.GrammarPattern{ChapterID: chapter.ID, Pattern: "p"}
	require.NoError(t, repo.Append(pattern))

	body := `{"pattern":"p2","explanation":"e","example":"ex"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", fmt.Sprintf("/api/grammar/%d", pattern.ID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"image_urls":[]`)
}

func TestGrammarController_InvalidChapterIDParam(t *testing.T) {
	router, _, cleanup := setupGrammarRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/grammar/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
