package constant

// 订单状态：0-待付款，1-已提交凭证，2-成功，20-失败(未收到资金)，40-失败(资金冻结)，50-失败(资金返回)
const (
	OrderStatusPending        int8 = 0
	OrderStatusSubmitted      int8 = 1
	OrderStatusSuccess        int8 = 2
	OrderStatusFailedNoFunds  int8 = 20
	OrderStatusFailedFrozen   int8 = 40
	OrderStatusFailedReturned int8 = 50
)

var orderStatusText = map[int8]string{
	OrderStatusPending:        "待付款",
	OrderStatusSubmitted:      "已提交凭证，待审核",
	OrderStatusSuccess:        "充值成功",
	OrderStatusFailedNoFunds:  "失败(未收到资金)",
	OrderStatusFailedFrozen:   "失败(资金冻结)",
	OrderStatusFailedReturned: "失败(资金返回)",
}

// StatusText 订单状态展示文案
func StatusText(status int8) string {
	if text, ok := orderStatusText[status]; ok {
		return text
	}
	return "未知状态"
}

// IsValidStatus 是否为合法状态值
func IsValidStatus(status int8) bool {
	_, ok := orderStatusText[status]
	return ok
}

// IsTerminalStatus 终态后不允许任何状态变更
func IsTerminalStatus(status int8) bool {
	switch status {
	case OrderStatusSuccess, OrderStatusFailedNoFunds, OrderStatusFailedFrozen, OrderStatusFailedReturned:
		return true
	}
	return false
}

// IsFailedStatus 失败终态，仅此类订单可删除
func IsFailedStatus(status int8) bool {
	switch status {
	case OrderStatusFailedNoFunds, OrderStatusFailedFrozen, OrderStatusFailedReturned:
		return true
	}
	return false
}

// IsSettleOutcome 结算目标状态必须是四个终态之一
func IsSettleOutcome(status int8) bool {
	return IsTerminalStatus(status)
}
