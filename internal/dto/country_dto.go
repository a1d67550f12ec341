package dto

import "time"

type CreateCountryReq struct {
	Code           string  `json:"code" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	Currency       string  `json:"currency" binding:"required"`
	PaymentMethods *string `json:"payment_methods"`
	QrCodeURL      *string `json:"qr_code_url"`
	BankInfo       *string `json:"bank_info"`
}

type UpdateCountryReq struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Currency       string  `json:"currency"`
	PaymentMethods *string `json:"payment_methods"`
	QrCodeURL      *string `json:"qr_code_url"`
	BankInfo       *string `json:"bank_info"`
}

type CountryResp struct {
	ID        uint64    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Status    int8      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
