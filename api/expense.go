package api

import (
	"errors"

	"ledger/database"
	"ledger/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 支出处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建支出处理器
func NewExpenseHandler() *ExpenseHandler {
	RegisterValidators()
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建支出请求，category 缺省为 Other
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,max=255" example:"Venue deposit"`
	Amount      float64 `json:"amount" binding:"required,gt=0,cents" example:"25000.00"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02" example:"2026-03-01"`
	Category    string  `json:"category" binding:"omitempty,expense_category" example:"Business"`
}

// UpdateExpenseRequest 更新支出请求
type UpdateExpenseRequest struct {
	Description *string  `json:"description" binding:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0,cents"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    *string  `json:"category" binding:"omitempty,expense_category"`
}

// ExpenseListResponse 支出分页列表
type ExpenseListResponse struct {
	Expenses   []models.Expense `json:"expenses"`
	Pagination Pagination       `json:"pagination"`
}

// ExpenseResponse 单条支出
type ExpenseResponse struct {
	Expense models.Expense `json:"expense"`
}

// CategoriesResponse 支出类别
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// Categories 获取支出类别
// @Summary 获取支出类别
// @Tags 支出
// @Produce json
// @Success 200 {object} CategoriesResponse "获取成功"
// @Router /api/categories [get]
func (h *ExpenseHandler) Categories(c *gin.Context) {
	OK(c, CategoriesResponse{Categories: models.GetCategories()})
}

// List 获取支出列表
// @Summary 获取支出列表
// @Description 获取项目的支出记录，按创建时间倒序分页
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} ExpenseListResponse "获取成功"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/projects/{projectId}/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	projectID := c.Param("projectId")
	page := ParsePageQuery(c)

	query := database.DB.Model(&models.Expense{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, err)
		return
	}
	list := make([]models.Expense, 0)
	if err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&list).Error; err != nil {
		InternalError(c, err)
		return
	}
	OK(c, ExpenseListResponse{Expenses: list, Pagination: NewPagination(page, total)})
}

// Create 创建支出
// @Summary 创建支出
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 201 {object} ExpenseResponse "创建成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Router /api/projects/{projectId}/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}

	expense := models.Expense{
		ProjectID:   c.Param("projectId"),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    models.NormalizeCategory(req.Category),
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, err)
		return
	}
	Created(c, ExpenseResponse{Expense: expense})
}

// Update 更新支出
// @Summary 更新支出
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param expenseId path string true "支出ID"
// @Param request body UpdateExpenseRequest true "支出信息"
// @Success 200 {object} ExpenseResponse "更新成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/projects/{projectId}/expenses/{expenseId} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}

	var expense models.Expense
	if err := database.DB.Where("id = ? AND project_id = ?", c.Param("expenseId"), c.Param("projectId")).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Expense not found")
			return
		}
		InternalError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, err)
			return
		}
		if err := database.DB.Where("id = ?", expense.ID).First(&expense).Error; err != nil {
			InternalError(c, err)
			return
		}
	}
	OK(c, ExpenseResponse{Expense: expense})
}

// Delete 删除支出
// @Summary 删除支出
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param expenseId path string true "支出ID"
// @Success 200 {object} SuccessResponse "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/projects/{projectId}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	res := database.DB.Where("id = ? AND project_id = ?", c.Param("expenseId"), c.Param("projectId")).Delete(&models.Expense{})
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Expense not found")
		return
	}
	Success(c)
}
