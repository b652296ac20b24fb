package repositories

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-api/database"
	"ecommerce-api/models"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *database.Mongo) *OrderRepository {
	return &OrderRepository{coll: db.Collection("orders")}
}

func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	result, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, ErrInvalidID
	}

	var order models.Order
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	return order, nil
}

// Find 返回订单列表，所有订单列表都按 createdAt 倒序（最新在前）
func (r *OrderRepository) Find(ctx context.Context, filter models.OrderFilter, limit, offset int64) ([]models.Order, error) {
	opts := options.Find().
		SetSkip(offset).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, buildOrderFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Printf("Error closing cursor: %v", err)
		}
	}()

	orders := make([]models.Order, 0)
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			log.Printf("Error decoding order: %v", err)
			continue
		}
		if order.Items == nil {
			order.Items = []models.OrderItem{}
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context, filter models.OrderFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, buildOrderFilter(filter))
}

func buildOrderFilter(filter models.OrderFilter) bson.M {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	return query
}
