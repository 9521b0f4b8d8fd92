package router

import (
	"net/http"
	"time"

	"ledger/api"
	"ledger/config"
	_ "ledger/docs"
	"ledger/middleware"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.Metrics())

	// 会话令牌放在 Authorization 头中，不依赖 Cookie
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	projectHandler := api.NewProjectHandler()
	incomeHandler := api.NewIncomeHandler()
	expenseHandler := api.NewExpenseHandler()
	statsHandler := api.NewStatsHandler()
	exportHandler := api.NewExportHandler(cfg)

	apiGroup := r.Group("/api")
	{
		// 支出类别（无需会话）
		apiGroup.GET("/categories", expenseHandler.Categories)

		projects := apiGroup.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.POST("/authenticate",
				middleware.LoginRateLimit(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window()),
				projectHandler.Authenticate)

			// 会话查询自行校验令牌，始终返回 200
			projects.GET("/:projectId/session", projectHandler.Session)

			// 需要项目会话的路由
			project := projects.Group("/:projectId")
			project.Use(middleware.ProjectAuth())
			{
				project.GET("", projectHandler.Get)
				project.DELETE("", projectHandler.Delete)
				project.PUT("/password", projectHandler.ChangePassword)

				// 收入
				project.GET("/income", incomeHandler.List)
				project.POST("/income", incomeHandler.Create)
				project.PUT("/income/:incomeId", incomeHandler.Update)
				project.DELETE("/income/:incomeId", incomeHandler.Delete)

				// 支出
				project.GET("/expenses", expenseHandler.List)
				project.POST("/expenses", expenseHandler.Create)
				project.PUT("/expenses/:expenseId", expenseHandler.Update)
				project.DELETE("/expenses/:expenseId", expenseHandler.Delete)

				project.GET("/stats", statsHandler.Get)

				// 导出
				project.GET("/export/income", exportHandler.ExportIncome)
				project.GET("/export/expenses", exportHandler.ExportExpenses)
				project.POST("/export/email", exportHandler.EmailExport)
			}
		}
	}

	return r
}
