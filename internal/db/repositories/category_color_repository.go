package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "skyward/qualmatrix/internal/models/gorm"
)

type CategoryColorRepository struct {
	db *gorm.DB
}

func NewCategoryColorRepository(db *gorm.DB) *CategoryColorRepository {
	return &CategoryColorRepository{db: db}
}

// ListByWing returns the wing's category display metadata ordered for the
// matrix header.
func (r *CategoryColorRepository) ListByWing(ctx context.Context, wingID string) ([]gormModels.CategoryColor, error) {
	var colors []gormModels.CategoryColor

	err := r.db.WithContext(ctx).
		Where("wing_id = ?", wingID).
		Order("sort_order, category").
		Find(&colors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category colors: %w", err)
	}

	return colors, nil
}

// UpsertColors replaces color/sort_order per (wing_id, category) pair.
func (r *CategoryColorRepository) UpsertColors(ctx context.Context, colors []gormModels.CategoryColor) error {
	if len(colors) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wing_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"color", "sort_order"}),
		}).
		Create(&colors).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category colors: %w", err)
	}
	return nil
}
