package ordermodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// RechargeOrder 充值订单。order_id 为商户订单号，platform_order_id 为系统订单号，
// 二者全局唯一且创建后不可变更；amount 创建后不可变更。
type RechargeOrder struct {
	ID              uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID         string           `gorm:"column:order_id;uniqueIndex:uk_order_id"`
	PlatformOrderID string           `gorm:"column:platform_order_id;uniqueIndex:uk_platform_order_id"`
	Amount          decimal.Decimal  `gorm:"column:amount;type:decimal(10,2)"`
	ActualAmount    *decimal.Decimal `gorm:"column:actual_amount;type:decimal(10,2)"`
	Code            string           `gorm:"column:code;index:idx_code"`
	ApiKey          string           `gorm:"column:api_key;index:idx_api_key"`
	Sign            string           `gorm:"column:sign"`
	SynCallbackURL  *string          `gorm:"column:syn_callback_url"`
	NotifyURL       *string          `gorm:"column:notify_url"`
	PayURL          *string          `gorm:"column:pay_url"`
	CallbackStr     *string          `gorm:"column:callback_str"`
	CallbackImg     *string          `gorm:"column:callback_img"`
	Status          int8             `gorm:"column:status;default:0;index:idx_status"`
	ErrorMsg        *string          `gorm:"column:error_msg"`
	SubmittedAt     *time.Time       `gorm:"column:submitted_at"`
	CallbackAt      *time.Time       `gorm:"column:callback_at"`
	CreatedAt       time.Time        `gorm:"column:created_at;index:idx_created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at"`
}

func (RechargeOrder) TableName() string { return "recharge_orders" }
