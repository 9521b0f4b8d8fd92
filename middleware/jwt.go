package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ledger/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     []byte
	sessionWindow = 24 * time.Hour

	// ErrSessionExpired 令牌缺失、签名无效或超出会话窗口
	ErrSessionExpired = errors.New("session expired or invalid")
	// ErrSessionMismatch 令牌所属项目与请求路径不一致
	ErrSessionMismatch = errors.New("session does not match project")
)

// Claims 项目会话声明
type Claims struct {
	ProjectID       string `json:"project_id"`
	ProjectName     string `json:"project_name"`
	AuthenticatedAt int64  `json:"authenticated_at"` // 毫秒时间戳
	jwt.RegisteredClaims
}

// AuthenticatedTime 认证时间
func (c *Claims) AuthenticatedTime() time.Time {
	return time.UnixMilli(c.AuthenticatedAt)
}

// InitJWT 初始化签名密钥与会话窗口
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.Session.Secret)
	if cfg.Session.ExpireTime > 0 {
		sessionWindow = cfg.Session.ExpireTime
	}
}

// SessionWindow 当前会话有效窗口
func SessionWindow() time.Duration {
	return sessionWindow
}

// SessionValid 认证时间距今不超过窗口即有效
func SessionValid(authenticatedAt, now time.Time, window time.Duration) bool {
	if authenticatedAt.After(now) {
		return false
	}
	return now.Sub(authenticatedAt) <= window
}

// GenerateToken 为通过密码校验的项目签发会话令牌
func GenerateToken(projectID, projectName string, now time.Time) (string, error) {
	claims := Claims{
		ProjectID:       projectID,
		ProjectName:     projectName,
		AuthenticatedAt: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   projectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionWindow)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken 解析并校验会话令牌
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrSessionExpired
	}
	if !SessionValid(claims.AuthenticatedTime(), time.Now(), sessionWindow) {
		return nil, ErrSessionExpired
	}
	return claims, nil
}

// BearerToken 从 Authorization 头中取出令牌
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ProjectAuth 项目会话校验中间件
// 令牌中的 project_id 必须与路径参数 :projectId 一致
func ProjectAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortUnauthorized(c, ErrSessionExpired)
			return
		}
		claims, err := ParseToken(token)
		if err != nil {
			abortUnauthorized(c, ErrSessionExpired)
			return
		}
		if projectID := c.Param("projectId"); projectID != "" && projectID != claims.ProjectID {
			abortUnauthorized(c, ErrSessionMismatch)
			return
		}
		c.Set("projectID", claims.ProjectID)
		c.Set("claims", claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	msg := err.Error()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": strings.ToUpper(msg[:1]) + msg[1:],
	})
}

// GetCurrentProjectID 获取当前会话的项目ID
func GetCurrentProjectID(c *gin.Context) string {
	if v, ok := c.Get("projectID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// GetClaims 获取当前会话声明
func GetClaims(c *gin.Context) *Claims {
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*Claims); ok {
			return claims
		}
	}
	return nil
}
