package mq

import (
	"encoding/json"
	"log"

	"recharge-order-api/internal/constant"
	"recharge-order-api/internal/dal"
	"recharge-order-api/internal/dao"
	"recharge-order-api/internal/dto"
	"recharge-order-api/internal/notify"
)

// StartConsumers 消费结算事件并执行商户回调通知。
// 通知本身尽力送达，消息无论成败都确认，避免坏消息阻塞队列。
func StartConsumers(notifier *notify.Notifier) {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume("order_settled", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume order_settled failed: %v", err)
		return
	}

	mainDao := dao.NewMainDao()
	orderDao := dao.NewOrderDao()

	for d := range msgs {
		var evt dto.OrderSettledEvent
		if err := json.Unmarshal(d.Body, &evt); err != nil {
			log.Printf("[MQ] 结算事件解析失败: %v", err)
			_ = d.Ack(false)
			continue
		}

		// 仅成功结算触发商户通知，失败终态留待人工对账
		if evt.Status != constant.OrderStatusSuccess {
			_ = d.Ack(false)
			continue
		}

		order, err := orderDao.GetByPlatformID(evt.PlatformOrderID)
		if err != nil || order == nil {
			log.Printf("[MQ] 结算事件订单不存在: %v, err=%v", evt.PlatformOrderID, err)
			_ = d.Ack(false)
			continue
		}
		merchant, err := mainDao.GetActiveMerchantByApiKey(order.ApiKey)
		if err != nil || merchant == nil {
			log.Printf("[MQ] 结算事件商户无效: %v, err=%v", order.ApiKey, err)
			_ = d.Ack(false)
			continue
		}

		notifier.NotifyMerchant(order, merchant)
		_ = d.Ack(false)
	}
}
