package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-api/models"
	"ecommerce-api/pagination"
	"ecommerce-api/repositories"
)

// UnknownProductName 条目引用的商品已不存在时使用的占位名称
const UnknownProductName = "Unknown Product"

const orderStatusPending = "pending"

type OrderService struct {
	orders   OrderStore
	products ProductStore
	events   EventPublisher
}

func NewOrderService(orders OrderStore, products ProductStore, events EventPublisher) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		events:   events,
	}
}

// Create 先整体校验，再逐个读取商品快照计算总价，最后落库；
// 中途任何失败都不会写入订单
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return models.Order{}, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	for i, item := range req.Items {
		if _, err := primitive.ObjectIDFromHex(item.ProductID); err != nil {
			return models.Order{}, fmt.Errorf("%w: items[%d].productId %q is not a valid product id", ErrValidation, i, item.ProductID)
		}
		if item.Qty < 1 {
			return models.Order{}, fmt.Errorf("%w: items[%d].qty must be >= 1, got %d", ErrValidation, i, item.Qty)
		}
	}

	// 计算总价，用下单时刻的商品价格
	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Order{}, &ProductNotFoundError{ProductID: item.ProductID}
		}
		if err != nil {
			return models.Order{}, err
		}

		total += product.Price * float64(item.Qty)
		items = append(items, models.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
	}

	order := models.Order{
		UserID:      userID,
		Items:       items,
		Status:      orderStatusPending,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.orders.Insert(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	s.publishCreated(ctx, created)
	return created, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string, params pagination.Params) ([]models.OrderResponse, pagination.Page, error) {
	return s.list(ctx, models.OrderFilter{UserID: userID}, params)
}

func (s *OrderService) ListAll(ctx context.Context, params pagination.Params) ([]models.OrderResponse, pagination.Page, error) {
	return s.list(ctx, models.OrderFilter{}, params)
}

func (s *OrderService) list(ctx context.Context, filter models.OrderFilter, params pagination.Params) ([]models.OrderResponse, pagination.Page, error) {
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	orders, err := s.orders.Find(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response, err := s.enrich(ctx, order)
		if err != nil {
			return nil, pagination.Page{}, err
		}
		responses = append(responses, response)
	}

	page := pagination.NewPage(params.Offset, params.Limit, int64(len(orders)), total)
	return responses, page, nil
}

// enrich 用当前商品目录补全订单条目；商品已不存在时用占位名，不让整个列表失败
func (s *OrderService) enrich(ctx context.Context, order models.Order) (models.OrderResponse, error) {
	items := make([]models.OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		detail := models.OrderItemDetail{
			ProductID: item.ProductID,
			Name:      UnknownProductName,
			Qty:       item.Qty,
		}

		product, err := s.products.FindByID(ctx, item.ProductID)
		switch {
		case err == nil:
			detail.Name = product.Name
			detail.ProductDetails = &product
		case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrInvalidID):
			// 保留占位名
		default:
			return models.OrderResponse{}, err
		}

		items = append(items, detail)
	}

	return models.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}, nil
}

// publishCreated 发布订单创建事件，失败只记录日志，不影响下单结果
func (s *OrderService) publishCreated(ctx context.Context, order models.Order) {
	if s.events == nil {
		return
	}

	event := models.OrderEvent{
		OrderID:  order.ID.Hex(),
		UserID:   order.UserID,
		Type:     "created",
		Status:   order.Status,
		Total:    order.TotalAmount,
		Occurred: time.Now().UTC(),
	}

	if err := s.events.PublishOrderCreated(ctx, event); err != nil {
		log.Printf("Failed to publish order created event: %v", err)
	}
}
