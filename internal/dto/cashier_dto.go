package dto

import (
	"encoding/json"
	"time"
)

// CashierSubmitReq 收银台提交凭证请求。仅凭平台订单号定位，无签名校验。
type CashierSubmitReq struct {
	PlatformOrderID string `json:"platform_order_id" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	CallbackStr     string `json:"callback_str"`
	CallbackImg     string `json:"callback_img"`
	ActualAmount    string `json:"actual_amount"`
}

type CashierSubmitResp struct {
	PlatformOrderID string    `json:"platform_order_id"`
	Status          int8      `json:"status"`
	StatusText      string    `json:"status_text"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type CashierInfoResp struct {
	PlatformOrderID string          `json:"platform_order_id"`
	OrderID         string          `json:"order_id"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	CountryName     string          `json:"country_name"`
	CountryCode     string          `json:"country_code"`
	MerchantID      string          `json:"merchant_id"`
	Status          int8            `json:"status"`
	StatusText      string          `json:"status_text"`
	CreatedAt       time.Time       `json:"created_at"`
	PaymentMethods  []string        `json:"payment_methods"`
	QrCodeURL       *string         `json:"qr_code_url"`
	BankInfo        json.RawMessage `json:"bank_info"`
}

type CashierStatusResp struct {
	PlatformOrderID string     `json:"platform_order_id"`
	OrderID         string     `json:"order_id"`
	Status          int8       `json:"status"`
	StatusText      string     `json:"status_text"`
	Amount          float64    `json:"amount"`
	ActualAmount    *float64   `json:"actual_amount"`
	CreatedAt       time.Time  `json:"created_at"`
	SubmittedAt     *time.Time `json:"submitted_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ErrorMsg        *string    `json:"error_msg"`
}

// CashierRedirect 同步跳转结果：RedirectURL 非空时 302 跳转，否则返回订单信息
type CashierRedirect struct {
	RedirectURL     string  `json:"-"`
	PlatformOrderID string  `json:"platform_order_id"`
	OrderID         string  `json:"order_id"`
	Status          int8    `json:"status"`
	StatusText      string  `json:"status_text"`
	Amount          float64 `json:"amount"`
}
