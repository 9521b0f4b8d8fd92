package database

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"ledger/config"
	"ledger/logger"
	"ledger/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init 初始化数据库连接并迁移表结构
func Init(cfg *config.Config, log *zap.Logger) error {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(log, cfg.Server.Mode),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := AutoMigrate(DB); err != nil {
		return fmt.Errorf("迁移数据库失败: %w", err)
	}

	log.Info("数据库初始化成功", zap.String("driver", cfg.Database.Driver))
	return nil
}

// AutoMigrate 迁移全部表，项目表需先于收支表创建
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Income{},
		&models.Expense{},
	)
}

// Dialector 按驱动类型构建 gorm 方言
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		return mysql.Open(MySQLDSN(cfg)), nil
	case "postgres", "postgresql":
		return postgres.Open(PostgresDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// MySQLDSN 构建 MySQL DSN 连接字符串
func MySQLDSN(cfg config.DatabaseConfig) string {
	charset := cfg.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		charset,
	)
}

// PostgresDSN 构建 URL 形式的 PostgreSQL DSN，用户名与密码经过转义
func PostgresDSN(cfg config.DatabaseConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	} else {
		u.User = url.User(cfg.Username)
	}
	return u.String()
}

// SQLiteDSN 在连接串中开启外键约束
// 连接池中的每个连接都会执行，级联删除依赖它
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
