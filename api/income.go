package api

import (
	"errors"

	"ledger/database"
	"ledger/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler 收入处理器
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	RegisterValidators()
	return &IncomeHandler{}
}

type CreateIncomeRequest struct {
	Name         string  `json:"name" binding:"required" example:"Asha Rao"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=30" example:"+91 98765 43210"`
	Amount       float64 `json:"amount" binding:"required,gt=0,cents" example:"5000.00"`
	Description  *string `json:"description" binding:"omitempty,max=255" example:"Gift"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02" example:"2026-03-01"`
	CalledStatus bool    `json:"called_status" example:"false"`
}

// UpdateIncomeRequest 部分更新，未传字段保持不变
type UpdateIncomeRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1"`
	PhoneNumber  *string  `json:"phone_number" binding:"omitempty,max=30"`
	Amount       *float64 `json:"amount" binding:"omitempty,gt=0,cents"`
	Description  *string  `json:"description" binding:"omitempty,max=255"`
	Date         *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	CalledStatus *bool    `json:"called_status"`
}

type IncomeListResponse struct {
	Income     []models.Income `json:"income"`
	Pagination Pagination      `json:"pagination"`
}

type IncomeResponse struct {
	Income models.Income `json:"income"`
}

// List 获取收入列表
// @Summary 获取收入列表
// @Description 获取项目的收入记录，按创建时间倒序分页
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} IncomeListResponse "获取成功"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/projects/{projectId}/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	projectID := c.Param("projectId")
	page := ParsePageQuery(c)

	query := database.DB.Model(&models.Income{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, err)
		return
	}
	list := make([]models.Income, 0)
	if err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&list).Error; err != nil {
		InternalError(c, err)
		return
	}
	OK(c, IncomeListResponse{Income: list, Pagination: NewPagination(page, total)})
}

// Create 创建收入
// @Summary 创建收入
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} IncomeResponse "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Router /api/projects/{projectId}/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}

	in := models.Income{
		ProjectID:    c.Param("projectId"),
		Name:         req.Name,
		PhoneNumber:  emptyToNil(req.PhoneNumber),
		Amount:       req.Amount,
		Description:  emptyToNil(req.Description),
		Date:         req.Date,
		CalledStatus: req.CalledStatus,
	}
	if err := database.DB.Create(&in).Error; err != nil {
		InternalError(c, err)
		return
	}
	Created(c, IncomeResponse{Income: in})
}

// Update 更新收入
// @Summary 更新收入
// @Description 部分更新收入记录（如切换 called_status）
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param incomeId path string true "收入ID"
// @Param request body UpdateIncomeRequest true "收入信息"
// @Success 200 {object} IncomeResponse "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/projects/{projectId}/income/{incomeId} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}

	var in models.Income
	if err := database.DB.Where("id = ? AND project_id = ?", c.Param("incomeId"), c.Param("projectId")).First(&in).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Income not found")
			return
		}
		InternalError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = emptyToNil(req.PhoneNumber)
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Description != nil {
		updates["description"] = emptyToNil(req.Description)
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.CalledStatus != nil {
		updates["called_status"] = *req.CalledStatus
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&in).Updates(updates).Error; err != nil {
			InternalError(c, err)
			return
		}
		if err := database.DB.Where("id = ?", in.ID).First(&in).Error; err != nil {
			InternalError(c, err)
			return
		}
	}
	OK(c, IncomeResponse{Income: in})
}

// Delete 删除收入
// @Summary 删除收入
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param incomeId path string true "收入ID"
// @Success 200 {object} SuccessResponse "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/projects/{projectId}/income/{incomeId} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	res := database.DB.Where("id = ? AND project_id = ?", c.Param("incomeId"), c.Param("projectId")).Delete(&models.Income{})
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Income not found")
		return
	}
	Success(c)
}

// emptyToNil 可选文本字段：空串按未填写处理
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
