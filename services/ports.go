package services

import (
	"context"

	"ecommerce-api/models"
)

// ProductStore 商品集合的存储契约，Find 无结果时返回空切片而不是 nil
type ProductStore interface {
	Insert(ctx context.Context, product models.Product) (models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Find(ctx context.Context, filter models.ProductFilter, limit, offset int64) ([]models.Product, error)
	Count(ctx context.Context, filter models.ProductFilter) (int64, error)
}

// OrderStore 订单集合的存储契约，Find 必须按 createdAt 倒序返回
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	Find(ctx context.Context, filter models.OrderFilter, limit, offset int64) ([]models.Order, error)
	Count(ctx context.Context, filter models.OrderFilter) (int64, error)
}

// EventPublisher 订单事件发布契约，未配置消息队列时为 nil
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderEvent) error
}
