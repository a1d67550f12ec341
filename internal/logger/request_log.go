package logger

import (
	"github.com/sirupsen/logrus"

	"recharge-order-api/internal/dto"
)

// WriteRequestLog 写入请求审计日志
func WriteRequestLog(payload *dto.AuditContextPayload) {
	if payload == nil {
		Log.Warn("[AuditLogger] payload 为空，跳过写入")
		return
	}

	fields := logrus.Fields{
		"trace_id":     payload.TraceID,
		"request_type": payload.RequestType,
		"ip":           payload.IP,
		"user_agent":   payload.UserAgent,
		"latency_ms":   payload.LatencyMs,
	}
	if payload.ApiKey != "" {
		fields["api_key"] = payload.ApiKey
	}
	if payload.OrderID != "" {
		fields["order_id"] = payload.OrderID
	}
	if payload.PlatformOrderID != "" {
		fields["platform_order_id"] = payload.PlatformOrderID
	}

	if payload.ErrorMsg != "" {
		fields["error_msg"] = payload.ErrorMsg
		Access.WithFields(fields).Error(payload.Status)
		return
	}
	Access.WithFields(fields).Info(payload.Status)
}
