package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/database/grammar"
	"github.com/example/kyoushitsu/internal/entities"
)

// GrammarStore defines database operations for grammar pattern management,
// including display-order maintenance.
type GrammarStore interface {
	ListByChapter(chapterID uint) ([]entities.GrammarPattern, error)
	GetByID(id uint) (*entities.GrammarPattern, error)
	Append(pattern *entities.GrammarPattern) error
	Update(pattern *entities.GrammarPattern) error
	Delete(id uint) error
	Reorder(chapterID uint, orderedIDs []uint) error
}

type GrammarController struct {
	store GrammarStore
}

func NewGrammarController(store GrammarStore) *GrammarController {
	return &GrammarController{store: store}
}

// CreateGrammarRequest is the request body for appending a grammar pattern.
type CreateGrammarRequest struct {
	ChapterID   uint     `json:"chapter_id" binding:"required"`
	Pattern     string   `json:"pattern"`
	Explanation string   `json:"explanation"`
	Example     string   `json:"example"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateGrammarRequest is the request body for updating a grammar pattern.
// The display position is not part of it; reordering is a separate call.
type UpdateGrammarRequest struct {
	Pattern     string   `json:"pattern"`
	Explanation string   `json:"explanation"`
	Example     string   `json:"example"`
	ImageURLs   []string `json:"image_urls"`
}

// ReorderRequest is the request body for rewriting a chapter's display order.
type ReorderRequest struct {
	ChapterID  uint   `json:"chapterId" binding:"required"`
	OrderedIDs []uint `json:"orderedIds"`
}

// ListByChapter returns a chapter's grammar patterns in display order.
// GET /api/grammar/:chapterId
func (gc *GrammarController) ListByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	patterns, err := gc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list grammar patterns")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}

// GetEntry returns a single grammar pattern.
// GET /api/grammar/entry/:id
func (gc *GrammarController) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pattern, err := gc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "grammar pattern")
			return
		}
		respondInternalError(c, err, "get grammar pattern")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pattern": pattern})
}

// CreateGrammar appends a pattern at the end of its chapter's display order.
// POST /api/grammar
func (gc *GrammarController) CreateGrammar(c *gin.Context) {
	var req CreateGrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	pattern := &entities.GrammarPattern{
		ChapterID:   req.ChapterID,
		Pattern:     req.Pattern,
		Explanation: req.Explanation,
		Example:     req.Example,
		ImageURLs:   sliceOrEmpty(req.ImageURLs),
	}
	if err := gc.store.Append(pattern); err != nil {
		respondInternalError(c, err, "create grammar pattern")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pattern": pattern})
}

// UpdateGrammar updates a pattern's fields, leaving its position alone.
// PUT /api/grammar/:id
func (gc *GrammarController) UpdateGrammar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pattern, err := gc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "grammar pattern")
			return
		}
		respondInternalError(c, err, "get grammar pattern")
		return
	}

	var req UpdateGrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	pattern.Pattern = req.Pattern
	pattern.Explanation = req.Explanation
	pattern.Example = req.Example
	pattern.ImageURLs = sliceOrEmpty(req.ImageURLs)
	if err := gc.store.Update(pattern); err != nil {
		respondInternalError(c, err, "update grammar pattern")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pattern": pattern})
}

// DeleteGrammar removes a grammar pattern.
// DELETE /api/grammar/:id
func (gc *GrammarController) DeleteGrammar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := gc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete grammar pattern")
		return
	}

	respondSuccess(c, "grammar pattern deleted")
}

// Reorder rewrites the display order of a chapter's patterns from the
// supplied id list. Ids outside the chapter are ignored.
// POST /api/grammar/reorder
func (gc *GrammarController) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := gc.store.Reorder(req.ChapterID, req.OrderedIDs); err != nil {
		if errors.Is(err, grammar.ErrEmptyOrder) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "reorder grammar patterns")
		return
	}

	respondSuccess(c, "order saved")
}

// sliceOrEmpty normalizes an absent list to an empty one so stored and
// serialized values are always [] rather than null.
func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
