package utils

import (
	"errors"

	"recharge-order-api/internal/constant"
)

// 统一响应格式（支持中英文提示）
type Response struct {
	Status  string      `json:"status"` // success | error
	Code    int         `json:"code"`
	Msg     string      `json:"msg"`              // 中文描述
	MsgEN   string      `json:"msg_en,omitempty"` // 英文描述
	Data    interface{} `json:"data"`
	TraceID string      `json:"trace_id,omitempty"`
}

// 成功响应
func Success(data interface{}) Response {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Response{
		Status: "success",
		Code:   constant.CodeSuccess,
		Msg:    "成功",
		MsgEN:  "Success",
		Data:   data,
	}
}

// 错误响应（自动从 constant 中获取中英文描述）
func Error(code int) Response {
	if info, exists := constant.GetErrorInfo(code); exists {
		return Response{
			Status: "error",
			Code:   code,
			Msg:    info.CN,
			MsgEN:  info.EN,
			Data:   map[string]interface{}{},
		}
	}
	return Response{
		Status: "error",
		Code:   code,
		Msg:    "未知错误",
		MsgEN:  "Unknown error",
		Data:   map[string]interface{}{},
	}
}

// 错误响应（带 TraceID）
func ErrorWithTrace(code int, traceID string) Response {
	resp := Error(code)
	resp.TraceID = traceID
	return resp
}

// 自定义错误响应
func CustomError(code int, message string) Response {
	return Response{
		Status: "error",
		Code:   code,
		Msg:    message,
		Data:   map[string]interface{}{},
	}
}

// FromError 根据业务错误构造响应，保留 WithMessage 覆盖后的描述
func FromError(err error) Response {
	code := constant.ErrCode(err)
	resp := Error(code)

	var be constant.Error
	if errors.As(err, &be) {
		resp.Msg = be.Message()
	} else {
		resp.Msg = err.Error()
	}
	return resp
}

// HTTPStatus 错误码映射 HTTP 状态码：不存在类 404，其余客户端错误 400
func HTTPStatus(code int) int {
	switch code {
	case constant.CodeSuccess:
		return 200
	case constant.CodeOrderNotFound, constant.CodeMerchantNotFound, constant.CodeCountryNotFound:
		return 404
	case constant.CodeSystemError, constant.CodeDatabaseError:
		return 500
	}
	return 400
}
