package api

import (
	"math"
	"strconv"

	"ledger/config"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 10
	defaultMaxLimit  = 100
)

// PageQuery 分页参数
type PageQuery struct {
	Page  int
	Limit int
}

// Offset 偏移量
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int   `json:"totalPages" example:"5"`
}

// NormalizePage 非法或缺省参数回退为默认值，limit 不超过 maxLimit
func NormalizePage(page, limit, defaultLimit, maxLimit int) PageQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	// 保证 (page-1)*limit 不溢出
	if limit > 0 && page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	return PageQuery{Page: page, Limit: limit}
}

// ParsePageQuery 从 ?page=&limit= 解析分页参数
func ParsePageQuery(c *gin.Context) PageQuery {
	defaultLimit, maxLimit := defaultPageLimit, defaultMaxLimit
	if cfg := config.GlobalConfig; cfg != nil && cfg.Pagination.DefaultLimit > 0 {
		defaultLimit, maxLimit = cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return NormalizePage(page, limit, defaultLimit, maxLimit)
}

// TotalPages 总页数，向上取整
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewPagination 构建分页信息
func NewPagination(p PageQuery, total int64) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: TotalPages(total, p.Limit),
	}
}
