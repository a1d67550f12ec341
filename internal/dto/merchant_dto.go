package dto

import "time"

type CreateMerchantReq struct {
	MerchantID  string `json:"merchant_id" binding:"required"`
	CallbackURL string `json:"callback_url"`
}

type UpdateMerchantReq struct {
	MerchantID  string  `json:"merchant_id"`
	CallbackURL *string `json:"callback_url"`
}

// MerchantResp 商户信息。SecretKey 仅在创建与密钥重置响应中回传。
type MerchantResp struct {
	ID          uint64    `json:"id"`
	MerchantID  string    `json:"merchant_id"`
	ApiKey      string    `json:"api_key"`
	SecretKey   string    `json:"secret_key,omitempty"`
	CallbackURL string    `json:"callback_url"`
	Status      int8      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
