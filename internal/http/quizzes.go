package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// QuizStore defines database operations for quiz management.
type QuizStore interface {
	ListByChapter(chapterID uint) ([]entities.Quiz, error)
	GetByID(id uint) (*entities.Quiz, error)
	Create(quiz *entities.Quiz) error
	Update(quiz *entities.Quiz) error
	Delete(id uint) error
}

type QuizzesController struct {
	store QuizStore
}

func NewQuizzesController(store QuizStore) *QuizzesController {
	return &QuizzesController{store: store}
}

// quizPublicView is the quiz shape served to unauthenticated clients.
// The correct answer (and its explanation) must never appear here.
type quizPublicView struct {
	ID        uint   `json:"id"`
	ChapterID uint   `json:"chapter_id"`
	Question  string `json:"question"`
	OptionA   string `json:"option_a"`
	OptionB   string `json:"option_b"`
	OptionC   string `json:"option_c"`
	OptionD   string `json:"option_d"`
}

func toQuizPublicView(q entities.Quiz) quizPublicView {
	return quizPublicView{
		ID:        q.ID,
		ChapterID: q.ChapterID,
		Question:  q.Question,
		OptionA:   q.OptionA,
		OptionB:   q.OptionB,
		OptionC:   q.OptionC,
		OptionD:   q.OptionD,
	}
}

// QuizRequest is the request body for creating or updating a quiz question.
type QuizRequest struct {
	ChapterID     uint   `json:"chapter_id"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	AnswerSummary string `json:"answer_summary"`
}

// ListByChapter returns a chapter's quiz questions without answers.
// GET /api/quizzes/:chapterId
func (qc *QuizzesController) ListByChapter(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	quizzes, err := qc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list quizzes")
		return
	}

	views := make([]quizPublicView, len(quizzes))
	for i, q := range quizzes {
		views[i] = toQuizPublicView(q)
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": views})
}

// ListByChapterAdmin returns a chapter's quiz questions with answers.
// GET /api/admin/quizzes/:chapterId
func (qc *QuizzesController) ListByChapterAdmin(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	quizzes, err := qc.store.ListByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "list quizzes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// GetEntry returns a single quiz question including its answer.
// GET /api/quiz/entry/:id
func (qc *QuizzesController) GetEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quiz, err := qc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "quiz")
			return
		}
		respondInternalError(c, err, "get quiz")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// CreateQuiz adds a quiz question to a chapter.
// POST /api/quizzes
func (qc *QuizzesController) CreateQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if req.ChapterID == 0 {
		respondBadRequest(c, "chapter_id is required")
		return
	}

	quiz := &entities.Quiz{
		ChapterID:     req.ChapterID,
		Question:      req.Question,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		AnswerSummary: req.AnswerSummary,
	}
	if err := qc.store.Create(quiz); err != nil {
		respondInternalError(c, err, "create quiz")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"quiz": quiz})
}

// UpdateQuiz updates a quiz question's fields.
// PUT /api/quizzes/:id
func (qc *QuizzesController) UpdateQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quiz, err := qc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "quiz")
			return
		}
		respondInternalError(c, err, "get quiz")
		return
	}

	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	quiz.Question = req.Question
	quiz.OptionA = req.OptionA
	quiz.OptionB = req.OptionB
	quiz.OptionC = req.OptionC
	quiz.OptionD = req.OptionD
	quiz.CorrectAnswer = req.CorrectAnswer
	quiz.AnswerSummary = req.AnswerSummary
	if err := qc.store.Update(quiz); err != nil {
		respondInternalError(c, err, "update quiz")
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": quiz})
}

// DeleteQuiz removes a quiz question.
// DELETE /api/quizzes/:id
func (qc *QuizzesController) DeleteQuiz(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := qc.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete quiz")
		return
	}

	respondSuccess(c, "quiz deleted")
}
