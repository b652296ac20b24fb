package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-api/middlewares"
	"ecommerce-api/repositories"
	"ecommerce-api/services"
)

// respondError 统一把服务层错误翻译成 HTTP 状态码，存储内部错误不外泄
func respondError(c *gin.Context, err error) {
	var productNotFound *services.ProductNotFoundError

	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, repositories.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &productNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": productNotFound.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("Unexpected store error (request_id=%s): %v", middlewares.RequestIDFromContext(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
