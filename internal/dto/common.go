package dto

import "time"

// AuditContextPayload 请求级审计上下文，由 Trace 中间件注入
type AuditContextPayload struct {
	TraceID         string    `json:"trace_id"`
	RequestType     string    `json:"request_type"`
	RequestBody     string    `json:"request_body"`
	ResponseBody    string    `json:"response_body"`
	IP              string    `json:"ip"`
	UserAgent       string    `json:"user_agent"`
	ApiKey          string    `json:"api_key"`
	OrderID         string    `json:"order_id"`
	PlatformOrderID string    `json:"platform_order_id"`
	Status          string    `json:"status"`
	ErrorMsg        string    `json:"error_msg"`
	StartTime       time.Time `json:"start_time"`
	LatencyMs       int64     `json:"latency_ms"`
}
