package notify

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"recharge-order-api/internal/dao"
	mainmodel "recharge-order-api/internal/model/main"
	ordermodel "recharge-order-api/internal/model/order"
	"recharge-order-api/internal/utils"
)

// Ledger 回调流水存储
type Ledger interface {
	Append(entry *ordermodel.CallbackLog) error
}

// Notifier 结算结果商户通知。尽力送达：有限次重试，每次尝试都落一条回调流水。
type Notifier struct {
	ledger   Ledger
	maxRetry int
}

func NewNotifier(maxRetry int) *Notifier {
	if maxRetry <= 0 {
		maxRetry = 3
	}
	return &Notifier{ledger: dao.NewCallbackDao(), maxRetry: maxRetry}
}

// NewNotifierWithLedger 支持注入流水存储
func NewNotifierWithLedger(ledger Ledger, maxRetry int) *Notifier {
	if maxRetry <= 0 {
		maxRetry = 3
	}
	return &Notifier{ledger: ledger, maxRetry: maxRetry}
}

// NotifyMerchant 向商户回调地址推送结算结果。通知失败只记录流水，不向上传播。
func (n *Notifier) NotifyMerchant(order *ordermodel.RechargeOrder, merchant *mainmodel.Merchant) {
	url := merchant.CallbackURL
	if order.NotifyURL != nil && *order.NotifyURL != "" {
		url = *order.NotifyURL
	}
	if url == "" {
		log.Printf("[NOTIFY] 订单 %s 无回调地址，跳过通知", order.PlatformOrderID)
		return
	}

	payload := map[string]string{
		"order_id":          order.OrderID,
		"platform_order_id": order.PlatformOrderID,
		"amount":            order.Amount.StringFixed(2),
		"status":            strconv.Itoa(int(order.Status)),
	}
	if order.ActualAmount != nil {
		payload["actual_amount"] = order.ActualAmount.StringFixed(2)
	}
	if order.ErrorMsg != nil {
		payload["error_msg"] = *order.ErrorMsg
	}
	payload["sign"] = utils.GenerateSign(payload, merchant.SecretKey)

	for attempt := 0; attempt < n.maxRetry; attempt++ {
		code, body, err := utils.HttpPostJson(url, payload)

		entry := &ordermodel.CallbackLog{
			OrderID:         order.OrderID,
			PlatformOrderID: order.PlatformOrderID,
			CallbackURL:     url,
			CallbackData:    utils.MapToJSON(payload),
			RetryCount:      attempt,
			CreatedAt:       time.Now(),
		}
		if code > 0 {
			entry.ResponseCode = &code
		}
		if body != "" {
			entry.ResponseBody = &body
		}

		ok := err == nil && code == http.StatusOK
		if ok {
			entry.Status = ordermodel.CallbackStatusSuccess
		}
		if appendErr := n.ledger.Append(entry); appendErr != nil {
			log.Printf("[NOTIFY] 回调流水写入失败: %v", appendErr)
		}

		if ok {
			return
		}
		log.Printf("[NOTIFY] 订单 %s 第 %d 次通知失败: code=%d err=%v", order.PlatformOrderID, attempt+1, code, err)
		if attempt < n.maxRetry-1 {
			time.Sleep(time.Duration(attempt+1) * time.Second)
		}
	}
	log.Printf("[NOTIFY] 订单 %s 通知最终失败，已达最大重试次数 %d", order.PlatformOrderID, n.maxRetry)
}
