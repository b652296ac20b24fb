package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Size struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Sizes       []Size             `json:"sizes" bson:"sizes"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Price 和 Quantity 用指针区分“字段缺失”和合法的零值
type CreateProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Price       *float64    `json:"price" binding:"required,gte=0"`
	Sizes       []SizeInput `json:"sizes" binding:"omitempty,dive"`
	Description string      `json:"description"`
}

type SizeInput struct {
	Size     string `json:"size"`
	Quantity *int   `json:"quantity" binding:"required,gte=0"`
}

type ProductFilter struct {
	Name string
	Size string
}
