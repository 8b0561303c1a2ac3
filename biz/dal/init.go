package dal

import (
	"vidtube.com/biz/dal/db"
	"vidtube.com/biz/dal/redis"
)

func Init() {
	db.Init()
	redis.Init()
}
