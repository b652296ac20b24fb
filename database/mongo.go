package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ecommerce-api/config"
)

// Mongo 持有 MongoDB 客户端和业务数据库，进程启动时创建一次，显式注入各仓储
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, err
	}

	// 启动时确认连接可用，失败时返回 ping 错误而不是断开错误
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if cerr := client.Disconnect(ctx); cerr != nil {
			log.Printf("Failed to close database connection: %v", cerr)
		}
		return nil, err
	}

	return &Mongo{
		Client: client,
		DB:     client.Database(cfg.MongoDatabase),
	}, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

// Ping 健康检查用，探测与存储的连通性
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
