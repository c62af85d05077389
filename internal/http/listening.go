package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// ListeningStore defines database operations for listening exercises.
type ListeningStore interface {
	ListByChapter(chapterID uint) ([]entities.ListeningExercise, error)
	GetByID(id uint) (*entities.ListeningExercise, error)
	Create(exercise *entities.ListeningExercise) error
	Update(exercise *entities.ListeningExercise) error
	Delete(id uint) error
}

type ListeningController struct {
	store ListeningStore
}

func NewListeningController(store ListeningStore) *ListeningController {
	return &ListeningController{store: store}
}

// CreateListeningRequest is the request body for adding a listening exercise.
type CreateListeningRequest struct {
	ChapterID   uint     `json:"chapter_id" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	AudioURLs   []string `json:"audio_urls"`
	Script      string   `json:"script"`
}

// UpdateListeningRequest is the request body for updating a listening exercise.
type UpdateListeningRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	AudioURLs   []string `json:"audio_urls"`
	Script      string   `json:"script"`
}

// ListByChapter returns a chapter's listening exercises, ordered by id.
// GET /api/listening/:chapterId and GET /api/admin/listening/:chapterId
func (lc *ListeningController) ListByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	exercises, err := lc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list listening exercises")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

// GetEntry returns a single listening exercise.
// GET /api/listening/entry/:id
func (lc *ListeningController) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := lc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "listening exercise")
			return
		}
		respondInternalError(c, err, "get listening exercise")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

// CreateListening adds a listening exercise to a chapter.
// POST /api/listening
func (lc *ListeningController) CreateListening(c *gin.Context) {
	var req CreateListeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	exercise := &entities.ListeningExercise{
		ChapterID:   req.ChapterID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AudioURLs:   sliceOrEmpty(req.AudioURLs),
		Script:      req.Script,
	}
	if err := lc.store.Create(exercise); err != nil {
		respondInternalError(c, err, "create listening exercise")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"exercise": exercise})
}

// UpdateListening updates a listening exercise's fields.
// PUT /api/listening/:id
func (lc *ListeningController) UpdateListening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	exercise, err := lc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "listening exercise")
			return
		}
		respondInternalError(c, err, "get listening exercise")
		return
	}

	var req UpdateListeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	exercise.Title = req.Title
	exercise.Description = req.Description
	exercise.ImageURL = req.ImageURL
	exercise.AudioURLs = sliceOrEmpty(req.AudioURLs)
	exercise.Script = req.Script
	if err := lc.store.Update(exercise); err != nil {
		respondInternalError(c, err, "update listening exercise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

// DeleteListening removes a listening exercise.
// DELETE /api/listening/:id
func (lc *ListeningController) DeleteListening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete listening exercise")
		return
	}

	respondSuccess(c, "listening exercise deleted")
}
