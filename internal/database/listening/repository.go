// Package listening provides database operations for listening exercises.
package listening

import (
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// Repository handles all listening exercise database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new listening repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByChapter returns all listening exercises in a chapter ordered by id.
func (r *Repository) ListByChapter(chapterID uint) ([]entities.ListeningExercise, error) {
	var exercises []entities.ListeningExercise
	err := r.db.Where("chapter_id = ?", chapterID).Order("id ASC").Find(&exercises).Error
	return exercises, err
}

// GetByID retrieves a single listening exercise.
func (r *Repository) GetByID(id uint) (*entities.ListeningExercise, error) {
	var exercise entities.ListeningExercise
	if err := r.db.First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// Create inserts a new listening exercise.
func (r *Repository) Create(exercise *entities.ListeningExercise) error {
	return r.db.Create(exercise).Error
}

// Update persists changes to an existing listening exercise.
func (r *Repository) Update(exercise *entities.ListeningExercise) error {
	return r.db.Save(exercise).Error
}

// Delete removes a listening exercise.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.ListeningExercise{}, id).Error
}
