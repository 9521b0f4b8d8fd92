package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project 项目（租户边界），凭项目名 + 密码访问
type Project struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProjectName  string    `json:"project_name" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate 生成 UUID 主键
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectSummary 项目列表项（不含密码哈希与更新时间）
type ProjectSummary struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
}
