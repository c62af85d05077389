package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/kyoushitsu/internal/scoring"
)

// QuizAnswerKeyStore loads the authoritative answers for a chapter's quizzes.
type QuizAnswerKeyStore interface {
	ListAnswerKeys(chapterID uint) ([]scoring.AnswerKey, error)
}

// ReadingAnswerKeyStore loads the authoritative answers for a chapter's
// reading questions.
type ReadingAnswerKeyStore interface {
	ListAnswerKeysByChapter(chapterID uint) ([]scoring.AnswerKey, error)
}

// ScoringController grades quiz and reading submissions. It only ever
// reads from the database; attempts are not stored.
type ScoringController struct {
	quizzes QuizAnswerKeyStore
	reading ReadingAnswerKeyStore
}

func NewScoringController(quizzes QuizAnswerKeyStore, reading ReadingAnswerKeyStore) *ScoringController {
	return &ScoringController{quizzes: quizzes, reading: reading}
}

// SubmissionRequest is the request body for both submission endpoints.
type SubmissionRequest struct {
	Answers []scoring.SubmittedAnswer `json:"answers"`
}

// SubmitQuiz grades a quiz submission for a chapter.
// POST /api/submit-quiz/:chapterId
func (sc *ScoringController) SubmitQuiz(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	keys, err := sc.quizzes.ListAnswerKeys(chapterID)
	if err != nil {
		respondInternalError(c, err, "load quiz answer keys")
		return
	}

	c.JSON(http.StatusOK, scoring.Grade(keys, req.Answers))
}

// SubmitReading grades a reading comprehension submission for a chapter.
// POST /api/submit-reading/:chapterId
func (sc *ScoringController) SubmitReading(c *gin.Context) {
	chapterID, ok := parseIDParam(c, "chapterId")
	if !ok {
		return
	}

	var req SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	keys, err := sc.reading.ListAnswerKeysByChapter(chapterID)
	if err != nil {
		respondInternalError(c, err, "load reading answer keys")
		return
	}

	c.JSON(http.StatusOK, scoring.Grade(keys, req.Answers))
}
