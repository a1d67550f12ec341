package dto

// OrderCreatedEvent 下单事件
type OrderCreatedEvent struct {
	OrderID         string `json:"order_id"`
	PlatformOrderID string `json:"platform_order_id"`
	ApiKey          string `json:"api_key"`
	Amount          string `json:"amount"`
	Code            string `json:"code"`
	CreatedAt       int64  `json:"created_at"`
}

// OrderSettledEvent 结算事件，消费侧负责商户回调通知
type OrderSettledEvent struct {
	OrderID         string `json:"order_id"`
	PlatformOrderID string `json:"platform_order_id"`
	Status          int8   `json:"status"`
	ErrorMsg        string `json:"error_msg,omitempty"`
	SettledAt       int64  `json:"settled_at"`
}
