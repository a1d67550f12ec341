package ordermodel

import "time"

const (
	CallbackStatusFailed  int8 = 0
	CallbackStatusSuccess int8 = 1
)

// CallbackLog 回调审计流水，只追加不修改
type CallbackLog struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         string    `gorm:"column:order_id;index:idx_order_id"`
	PlatformOrderID string    `gorm:"column:platform_order_id;index:idx_platform_order_id"`
	CallbackURL     string    `gorm:"column:callback_url"`
	CallbackData    string    `gorm:"column:callback_data;type:text"`
	ResponseCode    *int      `gorm:"column:response_code"`
	ResponseBody    *string   `gorm:"column:response_body;type:text"`
	Status          int8      `gorm:"column:status;default:0"`
	RetryCount      int       `gorm:"column:retry_count;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;index:idx_created_at"`
}

func (CallbackLog) TableName() string { return "callback_logs" }
