package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-api/middlewares"
	"ecommerce-api/models"
	"ecommerce-api/repositories"
	"ecommerce-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProductStore struct {
	byID       map[string]models.Product
	inserted   []models.Product
	insertErr  error
	found      []models.Product
	findErr    error
	total      int64
	countErr   error
	lastFilter models.ProductFilter
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byID: make(map[string]models.Product)}
}

func (f *fakeProductStore) add(product models.Product) models.Product {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.Sizes == nil {
		product.Sizes = []models.Size{}
	}
	f.byID[product.ID.Hex()] = product
	return product
}

func (f *fakeProductStore) Insert(ctx context.Context, product models.Product) (models.Product, error) {
	if f.insertErr != nil {
		return models.Product{}, f.insertErr
	}
	product.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, product)
	f.byID[product.ID.Hex()] = product
	return product, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Product{}, repositories.ErrInvalidID
	}
	product, ok := f.byID[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductStore) Find(ctx context.Context, filter models.ProductFilter, limit, offset int64) ([]models.Product, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.found == nil {
		return []models.Product{}, nil
	}
	return f.found, nil
}

func (f *fakeProductStore) Count(ctx context.Context, filter models.ProductFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

type fakeOrderStore struct {
	byID       map[string]models.Order
	inserted   []models.Order
	insertErr  error
	found      []models.Order
	findErr    error
	total      int64
	countErr   error
	lastFilter models.OrderFilter
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{byID: make(map[string]models.Order)}
}

func (f *fakeOrderStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	if f.insertErr != nil {
		return models.Order{}, f.insertErr
	}
	order.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, order)
	f.byID[order.ID.Hex()] = order
	return order, nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	order, ok := f.byID[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderStore) Find(ctx context.Context, filter models.OrderFilter, limit, offset int64) ([]models.Order, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.found == nil {
		return []models.Order{}, nil
	}
	return f.found, nil
}

func (f *fakeOrderStore) Count(ctx context.Context, filter models.OrderFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func setupRouter(t *testing.T, products *fakeProductStore, orders *fakeOrderStore) *gin.Engine {
	t.Helper()

	productController := NewProductController(services.NewProductService(products))
	orderController := NewOrderController(services.NewOrderService(orders, products, nil))

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.POST("/products", productController.Create)
	r.GET("/products", productController.List)
	r.GET("/products/:id", productController.Get)
	r.POST("/orders", orderController.Create)
	r.GET("/orders", orderController.List)
	r.GET("/orders/:userId", orderController.ListByUser)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errorMessage(t *testing.T, data []byte) string {
	t.Helper()
	var resp map[string]string
	decodeJSON(t, data, &resp)
	return resp["error"]
}

type pageInfo struct {
	Next     *int64 `json:"next"`
	Previous *int64 `json:"previous"`
	Limit    int64  `json:"limit"`
}

type productListResponse struct {
	Data []models.Product `json:"data"`
	Page pageInfo         `json:"page"`
}

type orderListResponse struct {
	Data []models.OrderResponse `json:"data"`
	Page pageInfo               `json:"page"`
}
