package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecommerce-api/config"
	"ecommerce-api/consumers"
	"ecommerce-api/controllers"
	"ecommerce-api/database"
	"ecommerce-api/middlewares"
	"ecommerce-api/rabbitmq"
	"ecommerce-api/repositories"
	"ecommerce-api/services"
)

func main() {
	// 加载配置
	cfg := config.LoadConfig()

	// 初始化数据库
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// 初始化RabbitMQ，未配置时跳过事件发布
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		rmq, err := rabbitmq.NewRabbitMQ(cfg)
		if err != nil {
			log.Fatalf("RabbitMQ initialization failed: %v", err)
		}
		defer rmq.Close()

		// 设置队列和交换机
		if err := rmq.SetupQueues(); err != nil {
			log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
		}

		// 启动消息消费者
		go consumers.StartOrderConsumer(rmq.Channel, cfg, orderRepo)

		publisher = rmq
	}

	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher)

	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	healthController := controllers.NewHealthController(db)

	// 创建Gin路由
	r := gin.Default()

	// 应用请求ID和Prometheus中间件
	r.Use(middlewares.RequestID())
	r.Use(middlewares.PrometheusMiddleware())

	// 暴露Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	r.GET("/", healthController.Root)
	r.GET("/health", healthController.Check)

	// 商品路由
	r.POST("/products", productController.Create)
	r.GET("/products", productController.List)
	r.GET("/products/:id", productController.Get)

	// 订单路由
	r.POST("/orders", orderController.Create)
	r.GET("/orders", orderController.List)
	r.GET("/orders/:userId", orderController.ListByUser)

	// 启动服务器
	log.Printf("Ecommerce API starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
