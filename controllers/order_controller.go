package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-api/middlewares"
	"ecommerce-api/models"
	"ecommerce-api/pagination"
	"ecommerce-api/services"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) Create(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "create", status)
	}()

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := oc.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List 全部订单列表，带 userId 查询参数时只返回该用户的订单
func (oc *OrderController) List(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "list", status)
	}()

	params, err := pagination.ParseValues(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		orders []models.OrderResponse
		page   pagination.Page
	)
	if userID := c.Query("userId"); userID != "" {
		orders, page, err = oc.service.ListByUser(c.Request.Context(), userID, params)
	} else {
		orders, page, err = oc.service.ListAll(c.Request.Context(), params)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders, "page": page})
}

// ListByUser 指定用户的订单列表，按创建时间倒序
func (oc *OrderController) ListByUser(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("order", "list_by_user", status)
	}()

	params, err := pagination.ParseValues(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, page, err := oc.service.ListByUser(c.Request.Context(), c.Param("userId"), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders, "page": page})
}
