package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationMsg 字段校验错误转提示信息
func ValidationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 不能为空", fe.Field())
	case "url":
		return fmt.Sprintf("%s 必须是合法的URL", fe.Field())
	case "gt":
		return fmt.Sprintf("%s 必须大于 %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s 长度必须为 %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s 校验失败: %s", fe.Field(), fe.Tag())
	}
}
