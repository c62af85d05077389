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

	"github.com/example/kyoushitsu/internal/database/reading"
	"github.com/example/kyoushitsu/internal/entities"
)

func setupReadingRouter(t *testing.T) (*gin.Engine, *reading.Repository, func()) {
	db, cleanup := setupTestDB(t)

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)

	router := gin.New()
	router.GET("/api/reading/:chapterId", controller.ListByChapter)
	router.GET("/api/admin/reading/:chapterId", controller.ListByChapterAdmin)
	router.GET("/api/reading/passage/:id", controller.GetPassage)
	router.POST("/api/reading/passage", controller.CreatePassage)
	router.PUT("/api/reading/passage/:id", controller.UpdatePassage)
	router.DELETE("/api/reading/passage/:id", controller.DeletePassage)

	return router, repo, cleanup
}

func seedPassage(t *testing.T, repo *reading.Repository, chapterID uint, content string, questions ...entities.ReadingQuestion) *entities.ReadingPassage {
	t.Helper()
	passage := &entities.ReadingPassage{
		ChapterID:      chapterID,
		PassageContent: content,
		Questions:      questions,
	}
	require.NoError(t, repo.CreatePassage(passage))
	return passage
}

func TestReadingController_PublicListRedactsAnswers(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.GET("/api/reading/:chapterId", controller.ListByChapter)

	chapter := seedChapter(t, db, "Chapter 1")
	seedPassage(t, repo, chapter.ID, "A short story.", entities.ReadingQuestion{
		QuestionText:  "What happened?",
		OptionA:       "x",
		OptionB:       "y",
		CorrectAnswer: "A",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reading/%d", chapter.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "What happened?")
	assert.NotContains(t, w.Body.String(), "correct_answer")
}

func TestReadingController_PublicListEmptyQuestionsIsArray(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.GET("/api/reading/:chapterId", controller.ListByChapter)

	chapter := seedChapter(t, db, "Chapter 1")
	seedPassage(t, repo, chapter.ID, "No questions here.")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/reading/%d", chapter.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"questions":[]`)
	assert.NotContains(t, w.Body.String(), `"questions":null`)
}

func TestReadingController_AdminListIncludesAnswers(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.GET("/api/admin/reading/:chapterId", controller.ListByChapterAdmin)

	chapter := seedChapter(t, db, "Chapter 1")
	seedPassage(t, repo, chapter.ID, "A short story.", entities.ReadingQuestion{
		QuestionText:  "What happened?",
		CorrectAnswer: "C",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/admin/reading/%d", chapter.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"correct_answer":"C"`)
}

func TestReadingController_CreatePassageWithQuestions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.POST("/api/reading/passage", controller.CreatePassage)

	chapter := seedChapter(t, db, "Chapter 1")

	body := fmt.Sprintf(`{
		"chapter_id": %d,
		"passage_content": "Story text",
		"questions": [
			{"question_text":"q1","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_answer":"A"},
			{"question_text":"q2","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_answer":"D"}
		]
	}`, chapter.ID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/reading/passage", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Passage readingPassageAdminView `json:"passage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotZero(t, response.Passage.ID)
	require.Len(t, response.Passage.Questions, 2)
	assert.Equal(t, "q1", response.Passage.Questions[0].QuestionText)
}

func TestReadingController_UpdatePassage_ReplacesQuestions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.PUT("/api/reading/passage/:id", controller.UpdatePassage)

	chapter := seedChapter(t, db, "Chapter 1")
	passage := seedPassage(t, repo, chapter.ID, "original",
		entities.ReadingQuestion{QuestionText: "old 1", CorrectAnswer: "A"},
		entities.ReadingQuestion{QuestionText: "old 2", CorrectAnswer: "B"},
	)

	body := `{"passage_content":"rewritten","questions":[{"question_text":"brand new","correct_answer":"C"}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", fmt.Sprintf("/api/reading/passage/%d", passage.ID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Passage readingPassageAdminView `json:"passage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "rewritten", response.Passage.PassageContent)
	require.Len(t, response.Passage.Questions, 1)
	assert.Equal(t, "brand new", response.Passage.Questions[0].QuestionText)
}

func TestReadingController_UpdatePassage_NotFound(t *testing.T) {
	router, _, cleanup := setupReadingRouter(t)
	defer cleanup()

	body := `{"passage_content":"x","questions":[]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/reading/passage/999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadingController_GetPassage_NotFound(t *testing.T) {
	router, _, cleanup := setupReadingRouter(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reading/passage/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadingController_DeletePassage(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := reading.NewRepository(db.DB)
	controller := NewReadingController(repo)
	router := gin.New()
	router.DELETE("/api/reading/passage/:id", controller.DeletePassage)

	chapter := seedChapter(t, db, "Chapter 1")
	passage := seedPassage(t, repo, chapter.ID, "doomed",
		entities.ReadingQuestion{QuestionText: "q", CorrectAnswer: "A"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/reading/passage/%d", passage.ID), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, err := repo.GetPassageByID(passage.ID)
	assert.Error(t, err)
}
