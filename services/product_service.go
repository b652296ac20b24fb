package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-api/models"
	"ecommerce-api/pagination"
)

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Price == nil {
		return models.Product{}, fmt.Errorf("%w: price is required", ErrValidation)
	}
	if *req.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must be >= 0, got %v", ErrValidation, *req.Price)
	}

	sizes := make([]models.Size, 0, len(req.Sizes))
	for i, size := range req.Sizes {
		if size.Quantity == nil {
			return models.Product{}, fmt.Errorf("%w: sizes[%d].quantity is required", ErrValidation, i)
		}
		if *size.Quantity < 0 {
			return models.Product{}, fmt.Errorf("%w: sizes[%d].quantity must be >= 0, got %d", ErrValidation, i, *size.Quantity)
		}
		sizes = append(sizes, models.Size{Size: size.Size, Quantity: *size.Quantity})
	}

	product := models.Product{
		Name:        name,
		Price:       *req.Price,
		Sizes:       sizes,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	return s.store.Insert(ctx, product)
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter, params pagination.Params) ([]models.Product, pagination.Page, error) {
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	products, err := s.store.Find(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.NewPage(params.Offset, params.Limit, int64(len(products)), total)
	return products, page, nil
}

// Get 按标识符取单个商品，非法标识符在任何存储调用之前拒绝
func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Product{}, fmt.Errorf("%w: %q is not a valid product id", ErrValidation, id)
	}
	return s.store.FindByID(ctx, id)
}
