package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyward/qualmatrix/internal/constants"
)

type User struct {
	ID        string         `gorm:"column:id;primaryKey;type:uuid"`
	Username  string         `gorm:"column:username;uniqueIndex"`
	Role      constants.Role `gorm:"column:role;type:pilot_role"`
	WingID    *string        `gorm:"column:wing_id;type:uuid"`
	IsActive  bool           `gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate mints the UUID app-side so the model works on both Postgres
// and the sqlite test databases.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
