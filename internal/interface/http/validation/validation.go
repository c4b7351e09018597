// Package validation 把gin绑定错误转换为带字段明细的AppError
//
// 字段名使用json/form tag(如authorId),与请求体保持一致
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/idcodec"
)

var registerOnce sync.Once

// Register 让validator报告json/form tag名而不是Go字段名
// 在创建路由前调用,可重复调用
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(tagName)
	})
}

func tagName(field reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// FromBindError 转换ShouldBindJSON/ShouldBindQuery返回的错误
func FromBindError(err error) *apperrors.AppError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]apperrors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, apperrors.FieldError{
				Field:   fieldPath(fe),
				Message: message(fe),
			})
		}
		return apperrors.Validation(fields...)
	}

	if errors.Is(err, idcodec.ErrInvalidIdentifier) {
		return InvalidIdentifier("body")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.Validation(apperrors.FieldError{Field: "body", Message: "请求体不是合法的JSON"})
	}
	if errors.Is(err, io.EOF) {
		return apperrors.Validation(apperrors.FieldError{Field: "body", Message: "请求体不能为空"})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperrors.Validation(apperrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("类型错误,应为%s", typeErr.Type.Kind()),
		})
	}

	return apperrors.Validation(apperrors.FieldError{Field: "body", Message: err.Error()})
}

// InvalidIdentifier 路径/查询参数中的ID格式错误
func InvalidIdentifier(field string) *apperrors.AppError {
	return &apperrors.AppError{
		Code:    apperrors.ErrCodeInvalidIdentifier,
		Message: idcodec.ErrInvalidIdentifier.Message,
		Fields: []apperrors.FieldError{{
			Field:   field,
			Message: "必须是非负整数",
		}},
	}
}

// Required 缺少必填参数
func Required(field string) *apperrors.AppError {
	return apperrors.Validation(apperrors.FieldError{Field: field, Message: "不能为空"})
}

// fieldPath 去掉顶层结构体名:CreateBookRequest.genreIds[0] → genreIds[0]
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "url":
		return "必须是有效的URL"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("长度不能少于%s个字符", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("至少需要%s项", fe.Param())
		default:
			return fmt.Sprintf("不能小于%s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("长度不能超过%s个字符", fe.Param())
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("最多%s项", fe.Param())
		default:
			return fmt.Sprintf("不能大于%s", fe.Param())
		}
	default:
		return fmt.Sprintf("不满足校验规则%s", fe.Tag())
	}
}
