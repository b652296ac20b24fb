package config

import (
	"io/ioutil"
	"os"
	"strings"
)

type Config struct {
	Port            string
	MongoURL        string
	MongoDatabase   string
	RabbitMQURL     string
	OrderExchange   string
	OrderQueue      string
	DeadLetterQueue string
	MaxPriority     int
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURL:        getEnvFromFile("MONGODB_URL_FILE", "MONGODB_URL", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "ecommerce"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""), // 为空时不发布订单事件
		OrderExchange:   getEnv("ORDER_EXCHANGE", "orders_exchange"),
		OrderQueue:      getEnv("ORDER_QUEUE", "orders_queue"),
		DeadLetterQueue: getEnv("DEAD_LETTER_QUEUE", "dead_letter_queue"),
		MaxPriority:     10, // 优先级队列最大优先级
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := ioutil.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}
