package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Income 收入记录，隶属于某个项目
type Income struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID    string    `json:"project_id" gorm:"type:varchar(36);index;not null"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	PhoneNumber  *string   `json:"phone_number,omitempty" gorm:"size:30"`
	Amount       float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description  *string   `json:"description,omitempty" gorm:"size:255"`
	Date         string    `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	CalledStatus bool      `json:"called_status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
	Project      Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (Income) TableName() string {
	return "income"
}

// BeforeCreate 生成 UUID 主键
func (in *Income) BeforeCreate(tx *gorm.DB) error {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	return nil
}
