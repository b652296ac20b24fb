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

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *database.Mongo) *ProductRepository {
	return &ProductRepository{coll: db.Collection("products")}
}

func (r *ProductRepository) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	result, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	return product, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrInvalidID
	}

	var product models.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	if product.Sizes == nil {
		product.Sizes = []models.Size{}
	}
	return product, nil
}

func (r *ProductRepository) Find(ctx context.Context, filter models.ProductFilter, limit, offset int64) ([]models.Product, error) {
	opts := options.Find().SetSkip(offset).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Printf("Error closing cursor: %v", err)
		}
	}()

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			log.Printf("Error decoding product: %v", err)
			continue
		}
		if product.Sizes == nil {
			product.Sizes = []models.Size{}
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context, filter models.ProductFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, buildProductFilter(filter))
}

// buildProductFilter 构建商品查询条件，Find 和 Count 必须共用同一套过滤逻辑
func buildProductFilter(filter models.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: filter.Name, Options: "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}
	return query
}
