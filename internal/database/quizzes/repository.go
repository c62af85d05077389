// Package quizzes provides database operations for quiz questions.
package quizzes

import (
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
	"github.com/example/kyoushitsu/internal/scoring"
)

// Repository handles all quiz database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new quiz repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByChapter returns all quiz questions in a chapter ordered by id.
// Rows include the correct answer; callers serving unauthenticated
// clients must redact it.
func (r *Repository) ListByChapter(chapterID uint) ([]entities.Quiz, error) {
	var quizzes []entities.Quiz
	err := r.db.Where("chapter_id = ?", chapterID).Order("id ASC").Find(&quizzes).Error
	return quizzes, err
}

// GetByID retrieves a single quiz question.
func (r *Repository) GetByID(id uint) (*entities.Quiz, error) {
	var quiz entities.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Create inserts a new quiz question.
func (r *Repository) Create(quiz *entities.Quiz) error {
	return r.db.Create(quiz).Error
}

// Update persists changes to an existing quiz question.
func (r *Repository) Update(quiz *entities.Quiz) error {
	return r.db.Save(quiz).Error
}

// Delete removes a quiz question.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Quiz{}, id).Error
}

// ListAnswerKeys returns the authoritative id/answer pairs for every quiz
// question in a chapter, for grading submissions.
func (r *Repository) ListAnswerKeys(chapterID uint) ([]scoring.AnswerKey, error) {
	var keys []scoring.AnswerKey
	err := r.db.Model(&entities.Quiz{}).
		Select("id AS question_id, correct_answer").
		Where("chapter_id = ?", chapterID).
		Order("id ASC").
		Scan(&keys).Error
	return keys, err
}
