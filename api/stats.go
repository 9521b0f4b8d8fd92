package api

import (
	"ledger/database"
	"ledger/models"

	"github.com/gin-gonic/gin"
)

// StatsHandler 项目统计处理器
type StatsHandler struct{}

// NewStatsHandler 创建统计处理器
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{}
}

// StatsResponse 统计结果
type StatsResponse struct {
	Stats models.ProjectStats `json:"stats"`
}

// Get 获取项目汇总统计
// @Summary 获取项目汇总统计
// @Description 汇总项目的收入总额、支出总额、结余以及记录条数，无记录时均为 0
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Success 200 {object} StatsResponse "获取成功"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/projects/{projectId}/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	projectID := c.Param("projectId")

	var incomeAmounts []float64
	if err := database.DB.Model(&models.Income{}).Where("project_id = ?", projectID).Pluck("amount", &incomeAmounts).Error; err != nil {
		InternalError(c, err)
		return
	}
	var expenseAmounts []float64
	if err := database.DB.Model(&models.Expense{}).Where("project_id = ?", projectID).Pluck("amount", &expenseAmounts).Error; err != nil {
		InternalError(c, err)
		return
	}

	OK(c, StatsResponse{Stats: models.ComputeStats(incomeAmounts, expenseAmounts)})
}
