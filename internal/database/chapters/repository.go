// Package chapters provides database operations for chapter management.
//
// Deleting a chapter removes every dependent row (vocabulary, grammar
// patterns, quizzes, reading passages with their questions, listening
// exercises) inside a single transaction.
package chapters

import (
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// Repository handles all chapter database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new chapter repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListChapters returns all chapters ordered by id.
func (r *Repository) ListChapters() ([]entities.Chapter, error) {
	var chapters []entities.Chapter
	err := r.db.Order("id ASC").Find(&chapters).Error
	return chapters, err
}

// GetChapterByID retrieves a single chapter.
func (r *Repository) GetChapterByID(id uint) (*entities.Chapter, error) {
	var chapter entities.Chapter
	if err := r.db.First(&chapter, id).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// CreateChapter inserts a new chapter.
func (r *Repository) CreateChapter(chapter *entities.Chapter) error {
	return r.db.Create(chapter).Error
}

// UpdateChapter persists changes to an existing chapter.
func (r *Repository) UpdateChapter(chapter *entities.Chapter) error {
	return r.db.Save(chapter).Error
}

// DeleteChapter removes a chapter and all content belonging to it.
// Reading questions go first since they hang off passages, not the
// chapter itself. Any failure rolls the whole cascade back.
func (r *Repository) DeleteChapter(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		passageIDs := tx.Model(&entities.ReadingPassage{}).Select("id").Where("chapter_id = ?", id)
		if err := tx.Where("passage_id IN (?)", passageIDs).Delete(&entities.ReadingQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&entities.ReadingPassage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&entities.Vocabulary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&entities.GrammarPattern{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&entities.Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&entities.ListeningExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Chapter{}, id).Error
	})
}
