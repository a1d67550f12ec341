package mq

import (
	"encoding/json"
	"log"

	"recharge-order-api/internal/dal"
	"recharge-order-api/internal/dto"

	"github.com/streadway/amqp"
)

func publish(routingKey string, v interface{}) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	err := dal.RabbitCh.Publish(
		"order_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}

func PublishOrderCreated(evt dto.OrderCreatedEvent) error {
	return publish("order.created", evt)
}

func PublishOrderSettled(evt dto.OrderSettledEvent) error {
	return publish("order.settled", evt)
}
