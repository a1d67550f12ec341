package mainmodel

import "time"

// MerchantStatus 状态：1-启用，0-禁用
const (
	MerchantStatusDisabled int8 = 0
	MerchantStatusEnabled  int8 = 1
)

type Merchant struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	MerchantID  string    `gorm:"column:merchant_id;uniqueIndex:uk_merchant_id"`
	ApiKey      string    `gorm:"column:api_key;uniqueIndex:uk_api_key"`
	SecretKey   string    `gorm:"column:secret_key"`
	CallbackURL string    `gorm:"column:callback_url"`
	Status      int8      `gorm:"column:status;default:1"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Merchant) TableName() string { return "merchant_config" }
