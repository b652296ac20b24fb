package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-api/middlewares"
	"ecommerce-api/models"
	"ecommerce-api/pagination"
	"ecommerce-api/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (pc *ProductController) Create(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "create", status)
	}()

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// List 商品列表，支持 name（不区分大小写的模糊匹配）和 size（精确匹配）过滤
func (pc *ProductController) List(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "list", status)
	}()

	params, err := pagination.ParseValues(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := models.ProductFilter{
		Name: c.Query("name"),
		Size: c.Query("size"),
	}

	products, page, err := pc.service.List(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products, "page": page})
}

func (pc *ProductController) Get(c *gin.Context) {
	defer func() {
		status := c.Writer.Status() >= 200 && c.Writer.Status() < 300
		middlewares.RecordOperation("product", "get", status)
	}()

	product, err := pc.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
