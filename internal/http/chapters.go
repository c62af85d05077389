package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// ChapterStore defines database operations for chapter management.
type ChapterStore interface {
	ListChapters() ([]entities.Chapter, error)
	GetChapterByID(id uint) (*entities.Chapter, error)
	CreateChapter(chapter *entities.Chapter) error
	UpdateChapter(chapter *entities.Chapter) error
	DeleteChapter(id uint) error
}

type ChaptersController struct {
	store ChapterStore
}

func NewChaptersController(store ChapterStore) *ChaptersController {
	return &ChaptersController{store: store}
}

// ChapterRequest is the request body for creating or updating a chapter.
type ChapterRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ListChapters returns every chapter, ordered by id.
// GET /api/chapters
func (cc *ChaptersController) ListChapters(c *gin.Context) {
	chapters, err := cc.store.ListChapters()
	if err != nil {
		respondInternalError(c, err, "list chapters")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chapters": chapters})
}

// CreateChapter creates a new chapter.
// POST /api/chapters
func (cc *ChaptersController) CreateChapter(c *gin.Context) {
	var req ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	chapter := &entities.Chapter{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := cc.store.CreateChapter(chapter); err != nil {
		respondInternalError(c, err, "create chapter")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chapter": chapter})
}

// UpdateChapter updates a chapter's title and description.
// PUT /api/chapters/:id
func (cc *ChaptersController) UpdateChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	chapter, err := cc.store.GetChapterByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "chapter")
			return
		}
		respondInternalError(c, err, "get chapter")
		return
	}

	var req ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	chapter.Title = req.Title
	chapter.Description = req.Description
	if err := cc.store.UpdateChapter(chapter); err != nil {
		respondInternalError(c, err, "update chapter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapter": chapter})
}

// DeleteChapter removes a chapter and everything belonging to it.
// DELETE /api/chapters/:id
func (cc *ChaptersController) DeleteChapter(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.DeleteChapter(id); err != nil {
		respondInternalError(c, err, "delete chapter")
		return
	}

	respondSuccess(c, "chapter deleted")
}
