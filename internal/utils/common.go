package utils

import (
	"encoding/json"
	"time"
)

// PtrTime 取当前/指定时间指针
func PtrTime(t time.Time) *time.Time { return &t }

// PtrString 非空字符串转指针，空串返回 nil
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MapToJSON 序列化为 JSON 字符串，失败时返回空对象
func MapToJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
