package api

import (
	"errors"
	"strings"
	"time"

	"ledger/database"
	"ledger/middleware"
	"ledger/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// passwordCost bcrypt 计算成本
var passwordCost = 12

// ProjectHandler 项目处理器
type ProjectHandler struct{}

// NewProjectHandler 创建项目处理器
func NewProjectHandler() *ProjectHandler {
	RegisterValidators()
	return &ProjectHandler{}
}

// ProjectCredentials 创建/访问项目请求
type ProjectCredentials struct {
	ProjectName string `json:"project_name" binding:"required" example:"wedding-2026"`
	Password    string `json:"password" binding:"required,max=72" example:"s3cret"`
}

// ChangePasswordRequest 修改项目密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"s3cret"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72" example:"n3w-s3cret"`
}

// ProjectListResponse 项目列表
type ProjectListResponse struct {
	Projects []models.ProjectSummary `json:"projects"`
}

// ProjectResponse 单个项目，创建与认证时附带会话令牌
type ProjectResponse struct {
	Project models.Project `json:"project"`
	Token   string         `json:"token,omitempty"`
}

// SessionResponse 会话状态
type SessionResponse struct {
	Valid           bool       `json:"valid"`
	ProjectID       string     `json:"project_id,omitempty"`
	ProjectName     string     `json:"project_name,omitempty"`
	AuthenticatedAt *time.Time `json:"authenticated_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// HashPassword bcrypt 加密
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 校验明文与哈希是否匹配
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// credentialsError 仅对超长密码给出具体提示，其余缺项统一提示
func credentialsError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
		return bindErrorMessage(err)
	}
	return "Project name and password are required"
}

// hashError bcrypt 只接受 72 字节以内的密码，多字节字符可能超出
func hashError(c *gin.Context, err error) {
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		BadRequest(c, "password must be at most 72 bytes")
		return
	}
	InternalError(c, err)
}

// findProjectByName 按名称查找项目，不存在返回 gorm.ErrRecordNotFound
func findProjectByName(name string) (*models.Project, error) {
	var project models.Project
	if err := database.DB.Where("project_name = ?", name).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List 获取项目列表
// @Summary 获取项目列表
// @Description 返回全部项目（不含密码哈希），按创建时间倒序
// @Tags 项目
// @Produce json
// @Success 200 {object} ProjectListResponse "获取成功"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects := make([]models.ProjectSummary, 0)
	if err := database.DB.Model(&models.Project{}).
		Select("id", "project_name", "created_at").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		InternalError(c, err)
		return
	}
	OK(c, ProjectListResponse{Projects: projects})
}

// Create 创建项目
// @Summary 创建项目
// @Description 以项目名 + 密码创建新项目，项目名全局唯一。成功后返回会话令牌。
// @Tags 项目
// @Accept json
// @Produce json
// @Param request body ProjectCredentials true "项目名与密码"
// @Success 201 {object} ProjectResponse "创建成功"
// @Failure 400 {object} ErrorResponse "缺少参数"
// @Failure 409 {object} ErrorResponse "项目名已存在"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, credentialsError(err))
		return
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		BadRequest(c, "Project name and password are required")
		return
	}
	name := strings.TrimSpace(req.ProjectName)

	// 检查项目名是否已存在
	if _, err := findProjectByName(name); err == nil {
		Conflict(c, "Project name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		InternalError(c, err)
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		hashError(c, err)
		return
	}

	project := models.Project{ProjectName: name, PasswordHash: hash}
	if err := database.DB.Create(&project).Error; err != nil {
		// 并发创建同名项目时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "Project name already exists")
			return
		}
		InternalError(c, err)
		return
	}

	token, err := middleware.GenerateToken(project.ID, project.ProjectName, time.Now())
	if err != nil {
		InternalError(c, err)
		return
	}
	Created(c, ProjectResponse{Project: project, Token: token})
}

// Authenticate 访问项目
// @Summary 访问项目
// @Description 校验项目名与密码，成功后返回项目信息（不含密码哈希）与 24 小时有效的会话令牌
// @Tags 项目
// @Accept json
// @Produce json
// @Param request body ProjectCredentials true "项目名与密码"
// @Success 200 {object} ProjectResponse "认证成功"
// @Failure 400 {object} ErrorResponse "缺少参数"
// @Failure 401 {object} ErrorResponse "项目名或密码错误"
// @Failure 429 {object} ErrorResponse "尝试过于频繁"
// @Router /api/projects/authenticate [post]
func (h *ProjectHandler) Authenticate(c *gin.Context) {
	var req ProjectCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, credentialsError(err))
		return
	}

	project, err := findProjectByName(strings.TrimSpace(req.ProjectName))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Unauthorized(c, "Invalid project name or password")
			return
		}
		InternalError(c, err)
		return
	}
	if !VerifyPassword(req.Password, project.PasswordHash) {
		Unauthorized(c, "Invalid project name or password")
		return
	}

	token, err := middleware.GenerateToken(project.ID, project.ProjectName, time.Now())
	if err != nil {
		InternalError(c, err)
		return
	}
	OK(c, ProjectResponse{Project: *project, Token: token})
}

// Get 获取项目详情
// @Summary 获取项目详情
// @Tags 项目
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Success 200 {object} ProjectResponse "获取成功"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Failure 404 {object} ErrorResponse "项目不存在"
// @Router /api/projects/{projectId} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	var project models.Project
	if err := database.DB.Where("id = ?", c.Param("projectId")).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err)
		return
	}
	OK(c, ProjectResponse{Project: project})
}

// ChangePassword 修改项目密码
// @Summary 修改项目密码
// @Description 需提供原密码。已签发的会话令牌在有效期内仍然可用。
// @Tags 项目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Param request body ChangePasswordRequest true "密码信息"
// @Success 200 {object} SuccessResponse "修改成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 401 {object} ErrorResponse "原密码错误"
// @Failure 404 {object} ErrorResponse "项目不存在"
// @Router /api/projects/{projectId}/password [put]
func (h *ProjectHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, bindErrorMessage(err))
		return
	}

	var project models.Project
	if err := database.DB.Where("id = ?", c.Param("projectId")).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Project not found")
			return
		}
		InternalError(c, err)
		return
	}
	if !VerifyPassword(req.OldPassword, project.PasswordHash) {
		Unauthorized(c, "Invalid password")
		return
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		hashError(c, err)
		return
	}
	if err := database.DB.Model(&project).Update("password_hash", hash).Error; err != nil {
		InternalError(c, err)
		return
	}
	Success(c)
}

// Delete 删除项目
// @Summary 删除项目
// @Description 删除项目，收入与支出记录由外键级联删除
// @Tags 项目
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "项目ID"
// @Success 200 {object} SuccessResponse "删除成功"
// @Failure 401 {object} ErrorResponse "会话无效"
// @Failure 404 {object} ErrorResponse "项目不存在"
// @Router /api/projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("projectId")).Delete(&models.Project{})
	if res.Error != nil {
		InternalError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Project not found")
		return
	}
	Success(c)
}

// Session 查询会话状态
// @Summary 查询会话状态
// @Description 校验 Authorization 中的会话令牌是否属于该项目且仍在有效期内，不会返回 401
// @Tags 项目
// @Produce json
// @Param projectId path string true "项目ID"
// @Success 200 {object} SessionResponse "会话状态"
// @Router /api/projects/{projectId}/session [get]
func (h *ProjectHandler) Session(c *gin.Context) {
	claims, err := middleware.ParseToken(middleware.BearerToken(c))
	if err != nil || claims.ProjectID != c.Param("projectId") {
		OK(c, SessionResponse{Valid: false})
		return
	}

	authenticatedAt := claims.AuthenticatedTime()
	expiresAt := authenticatedAt.Add(middleware.SessionWindow())
	OK(c, SessionResponse{
		Valid:           true,
		ProjectID:       claims.ProjectID,
		ProjectName:     claims.ProjectName,
		AuthenticatedAt: &authenticatedAt,
		ExpiresAt:       &expiresAt,
	})
}
