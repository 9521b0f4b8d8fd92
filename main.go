package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ledger/config"
	"ledger/database"
	"ledger/logger"
	"ledger/middleware"
	"ledger/router"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title 项目记账 API
// @version 1.0
// @description 多项目收支记账 API：项目名 + 密码访问，收入/支出记录管理、汇总统计与导出
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const defaultSessionSecret = "change-me-in-production"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("项目记账 v1.0.0")
		return
	}

	// .env 可选，用于本地开发注入 LEDGER_* 环境变量
	if err := godotenv.Load(); err == nil {
		log.Println("已加载 .env")
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	zlog, err := logger.New(cfg.Server.Mode, cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	config.PrintConfig(zlog.Sugar().Infof)
	if cfg.Session.Secret == defaultSessionSecret {
		zlog.Warn("会话签名密钥仍为默认值，请通过 LEDGER_SESSION_SECRET 设置")
	}

	// 初始化数据库
	if err := database.Init(cfg, zlog); err != nil {
		zlog.Fatal("数据库初始化失败", zap.Error(err))
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 设置路由
	r := router.SetupRouter(cfg, zlog)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("项目记账服务已启动",
			zap.String("addr", cfg.Server.Port),
			zap.String("swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("收到退出信号，正在关闭服务")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("服务关闭失败", zap.Error(err))
	}
}
