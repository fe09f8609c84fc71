package database

import (
	"context"
	"log"
	"theatre_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis not reachable, live availability feed disabled: %v", err)
	}
}
