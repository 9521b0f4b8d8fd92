package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense 支出记录，隶属于某个项目
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectID   string    `json:"project_id" gorm:"type:varchar(36);index;not null"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        string    `json:"date" gorm:"size:10;not null;index"` // YYYY-MM-DD
	Category    string    `json:"category" gorm:"size:50;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	Project     Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate 生成 UUID 主键，类别缺省为 Other
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Category = NormalizeCategory(e.Category)
	return nil
}

// 支出类别常量
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills & Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryEducation     = "Education"
	CategoryBusiness      = "Business"
	CategoryTravel        = "Travel"
	CategoryOther         = "Other"
)

// GetCategories 获取所有支出类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealthcare,
		CategoryEducation,
		CategoryBusiness,
		CategoryTravel,
		CategoryOther,
	}
}

// IsValidCategory 判断类别是否在预置列表中
func IsValidCategory(category string) bool {
	for _, c := range GetCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// NormalizeCategory 空类别归为 Other
func NormalizeCategory(category string) string {
	if category == "" {
		return CategoryOther
	}
	return category
}
