// Package grammar provides database operations for grammar patterns,
// including maintenance of their explicit display order within a chapter.
package grammar

import (
	"errors"

	"gorm.io/gorm"

	"github.com/example/kyoushitsu/internal/entities"
)

// ErrEmptyOrder is returned by Reorder when the supplied id list is empty.
var ErrEmptyOrder = errors.New("ordered id list must not be empty")

// Repository handles all grammar pattern database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new grammar repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListByChapter returns a chapter's patterns in display order.
// Ties on sort_order fall back to id.
func (r *Repository) ListByChapter(chapterID uint) ([]entities.GrammarPattern, error) {
	var patterns []entities.GrammarPattern
	err := r.db.Where("chapter_id = ?", chapterID).
		Order("sort_order ASC, id ASC").
		Find(&patterns).Error
	return patterns, err
}

// GetByID retrieves a single grammar pattern.
func (r *Repository) GetByID(id uint) (*entities.GrammarPattern, error) {
	var pattern entities.GrammarPattern
	if err := r.db.First(&pattern, id).Error; err != nil {
		return nil, err
	}
	return &pattern, nil
}

// Append inserts a pattern at the end of its chapter's display order:
// max(sort_order)+1, or 0 when the chapter has no patterns yet. The
// position lookup and the insert share one transaction so concurrent
// appends serialize on the database.
func (r *Repository) Append(pattern *entities.GrammarPattern) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&entities.GrammarPattern{}).
			Where("chapter_id = ?", pattern.ChapterID).
			Select("COALESCE(MAX(sort_order), -1) + 1").
			Scan(&next).Error
		if err != nil {
			return err
		}
		pattern.SortOrder = next
		return tx.Create(pattern).Error
	})
}

// Update persists changes to an existing pattern. SortOrder is left as
// loaded; only Reorder and Append assign positions.
func (r *Repository) Update(pattern *entities.GrammarPattern) error {
	return r.db.Save(pattern).Error
}

// Delete removes a grammar pattern. Remaining positions keep their values;
// gaps are harmless since listings sort by position.
func (r *Repository) Delete(id uint) error {
	return r.db.Delete(&entities.GrammarPattern{}, id).Error
}

// Reorder assigns sort_order = index for each id in orderedIDs, scoped to
// the given chapter. Ids that do not belong to the chapter are skipped by
// the scoping predicate. The batch is all-or-nothing: any failed update
// rolls back every assignment.
func (r *Repository) Reorder(chapterID uint, orderedIDs []uint) error {
	if len(orderedIDs) == 0 {
		return ErrEmptyOrder
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			err := tx.Model(&entities.GrammarPattern{}).
				Where("id = ? AND chapter_id = ?", id, chapterID).
				Update("sort_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
