package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ecommerce-api/config"
	"ecommerce-api/models"
)

// OrderReader 消费端只读订单访问
type OrderReader interface {
	FindByID(ctx context.Context, id string) (models.Order, error)
}

// QueueConsumer 注册队列消费，*amqp.Channel 满足该契约
type QueueConsumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

func StartOrderConsumer(ch QueueConsumer, cfg *config.Config, orders OrderReader) {
	// 消费主订单队列
	msgs, err := ch.Consume(
		cfg.OrderQueue,
		"ecommerce-api", // consumers tag
		false,           // auto-ack
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("Failed to register consumers: %v", err)
	}

	go func() {
		for msg := range msgs {
			processOrderMessage(msg, orders)
		}
	}()

	// 消费死信队列
	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"ecommerce-api-dlq", // consumers tag
		false,               // auto-ack
		false,               // exclusive
		false,               // no-local
		false,               // no-wait
		nil,
	)
	if err != nil {
		// 注册失败直接返回，不能消费 nil 通道
		log.Printf("Failed to register DLQ consumers: %v", err)
		return
	}

	go func() {
		for msg := range dlqMsgs {
			processDeadLetterMessage(msg)
		}
	}()
}

func processOrderMessage(msg amqp.Delivery, orders OrderReader) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in message processing: %v", r)
		}
	}()

	if err := handleMessage(msg.Body, orders); err != nil {
		log.Printf("Failed to process message: %v", err)
		err := msg.Nack(false, false)
		if err != nil {
			return
		} // 拒绝消息，不重新入队
		return
	}

	// 处理成功后确认消息
	err := msg.Ack(false)
	if err != nil {
		return
	}
}

func handleMessage(body []byte, orders OrderReader) error {
	var event models.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("invalid message format: %w", err)
	}

	log.Printf("Processing order event: ID=%s, Type=%s", event.OrderID, event.Type)

	// 根据事件类型处理
	switch event.Type {
	case "created":
		handleOrderCreated(event, orders)
	default:
		log.Printf("Unknown event type: %s", event.Type)
	}

	return nil
}

func processDeadLetterMessage(msg amqp.Delivery) {
	log.Printf("Received dead letter: %s", msg.Body)
	// 实际处理：记录到数据库、通知管理员等
	err := msg.Ack(false)
	if err != nil {
		return
	}
}

func handleOrderCreated(event models.OrderEvent, orders OrderReader) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	order, err := orders.FindByID(ctx, event.OrderID)
	if err != nil {
		log.Printf("Failed to load order %s: %v", event.OrderID, err)
		return
	}

	// 实际业务逻辑：通知其他服务、更新缓存等
	log.Printf("Handling order created: %s (user=%s, total=%.2f, status=%s)",
		event.OrderID, order.UserID, order.TotalAmount, order.Status)
}
