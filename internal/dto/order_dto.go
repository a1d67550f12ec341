package dto

import "time"

// CreateOrderReq 商户下单请求。amount 保留原始字符串参与验签，避免精度/格式偏差。
type CreateOrderReq struct {
	OrderID        string `json:"order_id" binding:"required"`
	Amount         string `json:"amount" binding:"required"`
	Code           string `json:"code" binding:"required"`
	ApiKey         string `json:"api_key" binding:"required"`
	Sign           string `json:"sign" binding:"required"`
	SynCallbackURL string `json:"syn_callback_url"`
	NotifyURL      string `json:"notify_url"`
}

// SignParams 参与验签的参数表
func (r CreateOrderReq) SignParams() map[string]string {
	return map[string]string{
		"order_id":         r.OrderID,
		"amount":           r.Amount,
		"code":             r.Code,
		"api_key":          r.ApiKey,
		"syn_callback_url": r.SynCallbackURL,
		"notify_url":       r.NotifyURL,
		"sign":             r.Sign,
	}
}

type CreateOrderResp struct {
	PlatformOrderID string  `json:"platform_order_id"`
	Amount          float64 `json:"amount"`
	PayURL          string  `json:"pay_url"`
}

// SubmitOrderReq 商户提交付款凭证请求
type SubmitOrderReq struct {
	OrderID         string `json:"order_id" binding:"required"`
	PlatformOrderID string `json:"platform_order_id" binding:"required"`
	ApiKey          string `json:"api_key" binding:"required"`
	Sign            string `json:"sign" binding:"required"`
	CallbackStr     string `json:"callback_str"`
	CallbackImg     string `json:"callback_img"`
}

func (r SubmitOrderReq) SignParams() map[string]string {
	return map[string]string{
		"order_id":          r.OrderID,
		"platform_order_id": r.PlatformOrderID,
		"api_key":           r.ApiKey,
		"callback_str":      r.CallbackStr,
		"callback_img":      r.CallbackImg,
		"sign":              r.Sign,
	}
}

// QueryOrderReq 商户订单查询请求
type QueryOrderReq struct {
	OrderID string `json:"order_id" binding:"required"`
	ApiKey  string `json:"api_key" binding:"required"`
	Sign    string `json:"sign" binding:"required"`
}

func (r QueryOrderReq) SignParams() map[string]string {
	return map[string]string{
		"order_id": r.OrderID,
		"api_key":  r.ApiKey,
		"sign":     r.Sign,
	}
}

type OrderCountryInfo struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type QueryOrderResp struct {
	OrderID         string            `json:"order_id"`
	PlatformOrderID string            `json:"platform_order_id"`
	Amount          float64           `json:"amount"`
	ActualAmount    *float64          `json:"actual_amount"`
	Status          int8              `json:"status"`
	StatusText      string            `json:"status_text"`
	CreatedAt       time.Time         `json:"created_at"`
	SubmittedAt     *time.Time        `json:"submitted_at"`
	CallbackAt      *time.Time        `json:"callback_at"`
	Country         *OrderCountryInfo `json:"country"`
}

// SettleOrderReq 管理端结算请求，status 必须是四个终态之一
type SettleOrderReq struct {
	Status   *int8  `json:"status" binding:"required"`
	ErrorMsg string `json:"error_msg"`
}

// BatchOrdersReq 批量处理请求，action 为 update_status 或 delete
type BatchOrdersReq struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1"`
	Action   string   `json:"action" binding:"required"`
	Status   *int8    `json:"status"`
	ErrorMsg string   `json:"error_msg"`
}

type BatchItemResult struct {
	OrderID string `json:"order_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BatchOrdersResp struct {
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
	Results      []BatchItemResult `json:"results"`
}
