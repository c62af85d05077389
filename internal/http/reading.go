package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// ReadingStore defines database operations for reading passages and their
// questions. Aggregates come back with questions attached and an empty,
// non-nil slice when a passage has none.
type ReadingStore interface {
	ListByChapter(chapterID uint) ([]entities.ReadingPassage, error)
	GetPassageByID(id uint) (*entities.ReadingPassage, error)
	CreatePassage(passage *entities.ReadingPassage) error
	UpdatePassage(id uint, content string, questions []entities.ReadingQuestion) error
	DeletePassage(id uint) error
}

type ReadingController struct {
	store ReadingStore
}

func NewReadingController(store ReadingStore) *ReadingController {
	return &ReadingController{store: store}
}

// readingQuestionPublicView is the question shape served to unauthenticated
// clients: no correct answer, no parent id.
type readingQuestionPublicView struct {
	ID           uint   `json:"id"`
	QuestionText string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
}

type readingPassagePublicView struct {
	ID             uint                        `json:"id"`
	ChapterID      uint                        `json:"chapter_id"`
	PassageContent string                      `json:"passage_content"`
	Questions      []readingQuestionPublicView `json:"questions"`
}

// readingPassageAdminView carries the full question rows.
type readingPassageAdminView struct {
	ID             uint                       `json:"id"`
	ChapterID      uint                       `json:"chapter_id"`
	PassageContent string                     `json:"passage_content"`
	Questions      []entities.ReadingQuestion `json:"questions"`
}

func toPassagePublicView(p entities.ReadingPassage) readingPassagePublicView {
	questions := make([]readingQuestionPublicView, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = readingQuestionPublicView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
		}
	}
	return readingPassagePublicView{
		ID:             p.ID,
		ChapterID:      p.ChapterID,
		PassageContent: p.PassageContent,
		Questions:      questions,
	}
}

func toPassageAdminView(p entities.ReadingPassage) readingPassageAdminView {
	questions := p.Questions
	if questions == nil {
		questions = []entities.ReadingQuestion{}
	}
	return readingPassageAdminView{
		ID:             p.ID,
		ChapterID:      p.ChapterID,
		PassageContent: p.PassageContent,
		Questions:      questions,
	}
}

// ReadingQuestionRequest is one question within a passage payload.
type ReadingQuestionRequest struct {
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
}

// CreatePassageRequest is the request body for creating a passage with its
// question set.
type CreatePassageRequest struct {
	ChapterID      uint                     `json:"chapter_id" binding:"required"`
	PassageContent string                   `json:"passage_content"`
	Questions      []ReadingQuestionRequest `json:"questions"`
}

// UpdatePassageRequest replaces a passage's content and entire question set.
type UpdatePassageRequest struct {
	PassageContent string                   `json:"passage_content"`
	Questions      []ReadingQuestionRequest `json:"questions"`
}

func toQuestionEntities(reqs []ReadingQuestionRequest) []entities.ReadingQuestion {
	questions := make([]entities.ReadingQuestion, len(reqs))
	for i, q := range reqs {
		questions[i] = entities.ReadingQuestion{
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return questions
}

// ListByChapter returns a chapter's passages with redacted questions.
// GET /api/reading/:chapterId
func (rc *ReadingController) ListByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	passages, err := rc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list reading passages")
		return
	}

	views := make([]readingPassagePublicView, len(passages))
	for i, p := range passages {
		views[i] = toPassagePublicView(p)
	}
	c.JSON(http.StatusOK, gin.H{"passages": views})
}

// ListByChapterAdmin returns a chapter's passages with full questions.
// GET /api/admin/reading/:chapterId
func (rc *ReadingController) ListByChapterAdmin(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	passages, err := rc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list reading passages")
		return
	}

	views := make([]readingPassageAdminView, len(passages))
	for i, p := range passages {
		views[i] = toPassageAdminView(p)
	}
	c.JSON(http.StatusOK, gin.H{"passages": views})
}

// GetPassage returns one passage with its full questions.
// GET /api/reading/passage/:id
func (rc *ReadingController) GetPassage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	passage, err := rc.store.GetPassageByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "passage")
			return
		}
		respondInternalError(c, err, "get passage")
		return
	}
	c.JSON(http.StatusOK, gin.H{"passage": toPassageAdminView(*passage)})
}

// CreatePassage inserts a passage together with its questions.
// POST /api/reading/passage
func (rc *ReadingController) CreatePassage(c *gin.Context) {
	var req CreatePassageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	passage := &entities.ReadingPassage{
		ChapterID:      req.ChapterID,
		PassageContent: req.PassageContent,
		Questions:      toQuestionEntities(req.Questions),
	}
	if err := rc.store.CreatePassage(passage); err != nil {
		respondInternalError(c, err, "create passage")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"passage": toPassageAdminView(*passage)})
}

// UpdatePassage rewrites a passage's content and replaces its question set
// wholesale.
// PUT /api/reading/passage/:id
func (rc *ReadingController) UpdatePassage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePassageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	err := rc.store.UpdatePassage(id, req.PassageContent, toQuestionEntities(req.Questions))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "passage")
			return
		}
		respondInternalError(c, err, "update passage")
		return
	}

	passage, err := rc.store.GetPassageByID(id)
	if err != nil {
		respondInternalError(c, err, "get passage")
		return
	}
	c.JSON(http.StatusOK, gin.H{"passage": toPassageAdminView(*passage)})
}

// DeletePassage removes a passage and its questions.
// DELETE /api/reading/passage/:id
func (rc *ReadingController) DeletePassage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.store.DeletePassage(id); err != nil {
		respondInternalError(c, err, "delete passage")
		return
	}

	respondSuccess(c, "passage deleted")
}
