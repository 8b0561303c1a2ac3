package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vidtube.com/config"
)

var rdb *redis.Client

func Init() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis unreachable, like counts fall back to the database: %v", err)
	}
}
