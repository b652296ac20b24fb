package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 数据库连通性检查
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// Check 健康检查，探测数据库连接，始终返回 200
func (hc *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	if err := hc.store.Ping(ctx); err != nil {
		status = "unhealthy"
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Root 服务运行标识
func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Ecommerce API is running!"})
}
