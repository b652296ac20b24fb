package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Items       []OrderItem        `json:"items" bson:"items"`
	Status      string             `json:"status" bson:"status"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Qty       int    `json:"qty" bson:"qty"`
}

type CreateOrderRequest struct {
	UserID string           `json:"userId" binding:"required"`
	Items  []OrderItemInput `json:"items" binding:"dive"`
}

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty" binding:"required,gte=1"`
}

// OrderResponse 列表接口返回的订单，条目用当前商品目录补全
type OrderResponse struct {
	ID          primitive.ObjectID `json:"id"`
	UserID      string             `json:"userId"`
	Items       []OrderItemDetail  `json:"items"`
	Status      string             `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type OrderItemDetail struct {
	ProductID      string   `json:"productId"`
	Name           string   `json:"name"`
	Qty            int      `json:"qty"`
	ProductDetails *Product `json:"productDetails,omitempty"`
}

type OrderFilter struct {
	UserID string
}

type OrderEvent struct {
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	Type     string    `json:"type"` // created
	Status   string    `json:"status"`
	Total    float64   `json:"total"`
	Occurred time.Time `json:"occurred"`
}
