package mainmodel

import "time"

const (
	CountryStatusDisabled int8 = 0
	CountryStatusEnabled  int8 = 1
)

// Country 国家编号配置，payment_methods/bank_info 为 JSON 文本，仅收银台展示使用
type Country struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Code           string    `gorm:"column:code;uniqueIndex:uk_code"`
	Name           string    `gorm:"column:name"`
	Currency       string    `gorm:"column:currency"`
	Status         int8      `gorm:"column:status;default:1"`
	PaymentMethods *string   `gorm:"column:payment_methods"`
	QrCodeURL      *string   `gorm:"column:qr_code_url"`
	BankInfo       *string   `gorm:"column:bank_info"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (Country) TableName() string { return "country_codes" }
