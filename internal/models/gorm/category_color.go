package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryColor is per-wing display metadata for a skill category.
// (wing_id, category) is unique; writes upsert on that pair.
type CategoryColor struct {
	ID        string `gorm:"column:id;primaryKey;type:uuid"`
	WingID    string `gorm:"column:wing_id;type:uuid;uniqueIndex:idx_wing_category"`
	Category  string `gorm:"column:category;uniqueIndex:idx_wing_category"`
	Color     string `gorm:"column:color"`
	SortOrder int    `gorm:"column:sort_order;default:0"`
}

// TableName specifies the table name for GORM
func (CategoryColor) TableName() string {
	return "category_colors"
}

func (c *CategoryColor) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
