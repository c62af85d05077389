package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// VocabularyStore defines database operations for vocabulary management.
type VocabularyStore interface {
	ListByChapter(chapterID uint) ([]entities.Vocabulary, error)
	GetByID(id uint) (*entities.Vocabulary, error)
	Create(item *entities.Vocabulary) error
	Update(item *entities.Vocabulary) error
	Delete(id uint) error
}

type VocabularyController struct {
	store VocabularyStore
}

func NewVocabularyController(store VocabularyStore) *VocabularyController {
	return &VocabularyController{store: store}
}

// CreateVocabularyRequest is the request body for adding a vocabulary item.
type CreateVocabularyRequest struct {
	ChapterID uint   `json:"chapter_id" binding:"required"`
	Term      string `json:"term" binding:"required"`
	Meaning   string `json:"meaning" binding:"required"`
	ImageURL  string `json:"image_url"`
}

// UpdateVocabularyRequest is the request body for updating a vocabulary item.
type UpdateVocabularyRequest struct {
	Term     string `json:"term" binding:"required"`
	Meaning  string `json:"meaning" binding:"required"`
	ImageURL string `json:"image_url"`
}

// ListByChapter returns a chapter's vocabulary, ordered by id.
// GET /api/vocabularies/:chapterId
func (vc *VocabularyController) ListByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	items, err := vc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list vocabulary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabularies": items})
}

// GetVocabulary returns a single vocabulary item.
// GET /api/vocabulary/:id
func (vc *VocabularyController) GetVocabulary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := vc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vocabulary item")
			return
		}
		respondInternalError(c, err, "get vocabulary item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabulary": item})
}

// CreateVocabulary adds a vocabulary item to a chapter.
// POST /api/vocabularies
func (vc *VocabularyController) CreateVocabulary(c *gin.Context) {
	var req CreateVocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item := &entities.Vocabulary{
		ChapterID: req.ChapterID,
		Term:      req.Term,
		Meaning:   req.Meaning,
		ImageURL:  req.ImageURL,
	}
	if err := vc.store.Create(item); err != nil {
		respondInternalError(c, err, "create vocabulary item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vocabulary": item})
}

// UpdateVocabulary updates a vocabulary item's fields.
// PUT /api/vocabularies/:id
func (vc *VocabularyController) UpdateVocabulary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := vc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vocabulary item")
			return
		}
		respondInternalError(c, err, "get vocabulary item")
		return
	}

	var req UpdateVocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item.Term = req.Term
	item.Meaning = req.Meaning
	item.ImageURL = req.ImageURL
	if err := vc.store.Update(item); err != nil {
		respondInternalError(c, err, "update vocabulary item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"vocabulary": item})
}

// DeleteVocabulary removes a vocabulary item.
// DELETE /api/vocabularies/:id
func (vc *VocabularyController) DeleteVocabulary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := vc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete vocabulary item")
		return
	}

	respondSuccess(c, "vocabulary item deleted")
}
