package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ledger/config"
	"ledger/database"
	"ledger/middleware"
	"ledger/models"
	"ledger/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	emailService *service.EmailService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(cfg *config.Config) *ExportHandler {
	RegisterValidators()
	return &ExportHandler{emailService: service.NewEmailService(&cfg.Email)}
}

// EmailExportRequest 邮件投递导出文件请求
type EmailExportRequest struct {
	To     string `json:"to" binding:"required,email" example:"owner@example.com"`
	Kind   string `json:"kind" binding:"required,oneof=income expenses" example:"income"`
	Format string `json:"format" binding:"omitempty,oneof=csv xlsx" example:"csv"`
}

// IncomeExportResponse 收入导出（JSON）
type IncomeExportResponse struct {
	Income []models.Income `json:"income"`
}

// ExpenseExportResponse 支出导出（JSON）
type ExpenseExportResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

func loadAllIncome(projectID string) ([]models.Income, error) {
	list := make([]models.Income, 0)
	err := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func loadAllExpenses(projectID string) ([]models.Expense, error) {
	list := make([]models.Expense, 0)
	err := database.DB.Where("project_id = ?", projectID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// exportFormat 读取 ?format=，缺省 json
func exportFormat(c *gin.Context) (string, bool) {
	format := c.DefaultQuery("format", service.FormatJSON)
	switch format {
	case service.FormatJSON, service.FormatCSV, service.FormatXLSX:
		return format, true
	}
	return "", false
}

// projectNameFor 导出文件名使用的项目名
func projectNameFor(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil && claims.ProjectName != "" {
		return claims.ProjectName
	}
	return "project"
}

func sendFile(c *gin.Context, file *service.ExportFile) {
	c.Header("Content-Disposition", contentDisposition(file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// contentDisposition filename 为 ASCII 回退名，filename* 按 RFC 5987 携带 UTF-8 原名
func contentDisposition(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, name)
	encoded := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, encoded)
}

// ExportIncome 导出收入
// @Summary 导出收入
// @Description 导出项目全部收入。format=json 返回 JSON，csv/xlsx 返回文件下载
// @Tags 导出
// @Produce json
// @Produce text/csv
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param format query string false "导出格式 json/csv/xlsx" default(json)
// @Success 200 {object} IncomeExportResponse "导出成功"
// @Failure 400 {object} ErrorResponse "不支持的格式"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Router /api/projects/{projectId}/export/income [get]
func (h *ExportHandler) ExportIncome(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		BadRequest(c, "format must be one of: json, csv, xlsx")
		return
	}

	list, err := loadAllIncome(c.Param("projectId"))
	if err != nil {
		InternalError(c, err)
		return
	}
	if format == service.FormatJSON {
		OK(c, IncomeExportResponse{Income: list})
		return
	}

	file, err := service.RenderIncome(projectNameFor(c), format, list, time.Now())
	if err != nil {
		InternalError(c, err)
		return
	}
	sendFile(c, file)
}

// ExportExpenses 导出支出
// @Summary 导出支出
// @Description 导出项目全部支出。format=json 返回 JSON，csv/xlsx 返回文件下载
// @Tags 导出
// @Produce json
// @Produce text/csv
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param format query string false "导出格式 json/csv/xlsx" default(json)
// @Success 200 {object} ExpenseExportResponse "导出成功"
// @Failure 400 {object} ErrorResponse "不支持的格式"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Router /api/projects/{projectId}/export/expenses [get]
func (h *ExportHandler) ExportExpenses(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		BadRequest(c, "format must be one of: json, csv, xlsx")
		return
	}

	list, err := loadAllExpenses(c.Param("projectId"))
	if err != nil {
		InternalError(c, err)
		return
	}
	if format == service.FormatJSON {
		OK(c, ExpenseExportResponse{Expenses: list})
		return
	}

	file, err := service.RenderExpenses(projectNameFor(c), format, list, time.Now())
	if err != nil {
		InternalError(c, err)
		return
	}
	sendFile(c, file)
}

// EmailExport 通过邮件发送导出文件
// @Summary 邮件发送导出文件
// @Description 将收入或支出导出为 CSV/XLSX 并作为附件发送到指定邮箱，需开启邮件服务
// @Tags 导出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param request body EmailExportRequest true "收件人与导出类型"
// @Success 200 {object} SuccessResponse "发送成功"
// @Failure 400 {object} ErrorResponse "参数错误或邮件服务未启用"
// @Failure 500 {object} ErrorResponse "发送失败"
// @Router /api/projects/{projectId}/export/email [post]
func (h *ExportHandler) EmailExport(c *gin.Context) {
	var req EmailExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}
	if !h.emailService.Enabled() {
		BadRequest(c, "Email delivery is not enabled")
		return
	}
	if req.Format == "" {
		req.Format = service.FormatCSV
	}

	projectID := c.Param("projectId")
	projectName := projectNameFor(c)
	var (
		file *service.ExportFile
		err  error
	)
	switch req.Kind {
	case service.ExportIncome:
		var list []models.Income
		if list, err = loadAllIncome(projectID); err == nil {
			file, err = service.RenderIncome(projectName, req.Format, list, time.Now())
		}
	default:
		var list []models.Expense
		if list, err = loadAllExpenses(projectID); err == nil {
			file, err = service.RenderExpenses(projectName, req.Format, list, time.Now())
		}
	}
	if err != nil {
		InternalError(c, err)
		return
	}

	if err := h.emailService.SendExport(req.To, projectName, file); err != nil {
		if errors.Is(err, service.ErrEmailDisabled) {
			BadRequest(c, "Email delivery is not enabled")
			return
		}
		InternalError(c, err)
		return
	}
	Success(c)
}
