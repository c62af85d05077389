// Package reading provides database operations for reading passages and
// their comprehension questions.
//
// Passages are served as parent+children aggregates. The composition is
// two queries (passages, then questions by passage id set), never an
// N+1 loop, and a passage without questions carries an empty slice.
package reading

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/kyoushitsu/internal/entities"
	"github.com/example/kyoushitsu/internal/scoring"
)

// Repository handles all reading database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reading repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func questionsByID(db *gorm.DB) *gorm.DB {
	return db.Order("reading_questions.id ASC")
}

// ListByChapter returns a chapter's passages with their questions attached,
// passages and questions both ordered by id.
func (r *Repository) ListByChapter(chapterID uint) ([]entities.ReadingPassage, error) {
	var passages []entities.ReadingPassage
	err := r.db.Preload("Questions", questionsByID).
		Where("chapter_id = ?", chapterID).
		Order("id ASC").
		Find(&passages).Error
	if err != nil {
		return nil, err
	}
	for i := range passages {
		if passages[i].Questions == nil {
			passages[i].Questions = []entities.ReadingQuestion{}
		}
	}
	return passages, nil
}

// GetPassageByID retrieves a single passage with its questions.
// Returns gorm.ErrRecordNotFound when the passage does not exist.
func (r *Repository) GetPassageByID(id uint) (*entities.ReadingPassage, error) {
	var passage entities.ReadingPassage
	if err := r.db.Preload("Questions", questionsByID).First(&passage, id).Error; err != nil {
		return nil, err
	}
	if passage.Questions == nil {
		passage.Questions = []entities.ReadingQuestion{}
	}
	return &passage, nil
}

// CreatePassage inserts a passage and its question set in one transaction.
func (r *Repository) CreatePassage(passage *entities.ReadingPassage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questions := passage.Questions
		passage.Questions = nil
		if err := tx.Omit(clause.Associations).Create(passage).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].PassageID = passage.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		passage.Questions = questions
		return nil
	})
}

// UpdatePassage rewrites a passage's content and replaces its question set
// wholesale: all existing questions are deleted and the supplied set is
// inserted, within one transaction.
func (r *Repository) UpdatePassage(id uint, content string, questions []entities.ReadingQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.ReadingPassage{}).
			Where("id = ?", id).
			Update("passage_content", content)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("passage_id = ?", id).Delete(&entities.ReadingQuestion{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].PassageID = id
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePassage removes a passage and its questions in one transaction.
func (r *Repository) DeletePassage(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("passage_id = ?", id).Delete(&entities.ReadingQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.ReadingPassage{}, id).Error
	})
}

// ListAnswerKeysByChapter returns the authoritative id/answer pairs for
// every reading question in a chapter, scoped via the owning passages.
func (r *Repository) ListAnswerKeysByChapter(chapterID uint) ([]scoring.AnswerKey, error) {
	var keys []scoring.AnswerKey
	err := r.db.Model(&entities.ReadingQuestion{}).
		Select("reading_questions.id AS question_id, reading_questions.correct_answer").
		Joins("JOIN reading_passages ON reading_passages.id = reading_questions.passage_id").
		Where("reading_passages.chapter_id = ?", chapterID).
		Order("reading_questions.id ASC").
		Scan(&keys).Error
	return keys, err
}
