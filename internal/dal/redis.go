package dal

import (
	"context"
	"log"
	"time"

	"recharge-order-api/internal/config"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// 订单相关缓存键与有效期，service 层缓存助手统一使用
const (
	OrderCacheTTL   = 10 * time.Minute
	CashierCacheTTL = time.Minute
)

func OrderCacheKey(platformOrderID string) string { return "order:" + platformOrderID }

func CashierCacheKey(platformOrderID string) string { return "cashier:" + platformOrderID }

func InitRedis() {
	c := config.C.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	ctx, cancel := context.WithTimeout(RedisCtx, 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis %s ping failed: %v", c.Addr, err)
	}
	log.Printf("redis connected: %s db=%d", c.Addr, c.DB)
}
