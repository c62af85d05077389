// Package vocabulary provides database operations for vocabulary items.
package vocabulary

import (
	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// Repository handles all vocabulary database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByChapter returns all vocabulary items in a chapter ordered by id.
func (r *Repository) ListByChapter(chapterID uint) ([]entities.Vocabulary, error) {
	var items []entities.Vocabulary
	err := r.db.Where("chapter_id = ?", chapterID).Order("id ASC").Find(&items).Error
	return items, err
}

// GetByID retrieves a single vocabulary item.
func (r *Repository) GetByID(id uint) (*entities.Vocabulary, error) {
	var item entities.Vocabulary
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new vocabulary item.
func (r *Repository) Create(item *entities.Vocabulary) error {
	return r.db.Create(item).Error
}

// Update persists changes to an existing vocabulary item.
func (r *Repository) Update(item *entities.Vocabulary) error {
	return r.db.Save(item).Error
}

// Delete removes a vocabulary item.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.Vocabulary{}, id).Error
}
