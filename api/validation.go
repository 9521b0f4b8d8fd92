package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"ledger/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators 在 gin 的校验引擎上注册自定义规则
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// 错误信息中使用 json 字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("expense_category", func(fl validator.FieldLevel) bool {
			return models.IsValidCategory(fl.Field().String())
		})
		// 金额列为 decimal(12,2)，多余的小数位会被数据库截掉
		_ = v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
			return ValidCents(fl.Field().Float())
		})
	})
}

// ValidCents 金额最多两位小数
func ValidCents(amount float64) bool {
	return decimal.NewFromFloat(amount).Exponent() >= -2
}

// bindErrorMessage 将绑定错误转换为可读信息
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "cents":
		return field + " must have at most 2 decimal places"
	case "expense_category":
		return field + " must be one of: " + strings.Join(models.GetCategories(), ", ")
	default:
		return field + " is invalid"
	}
}
