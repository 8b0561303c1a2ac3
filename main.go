package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"vidtube.com/biz/dal"
	"vidtube.com/biz/mw"
	"vidtube.com/config"
	"vidtube.com/config/jaeger"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

func Init() {
	config.Init()
	dal.Init()
	mw.Init()
	if err := utils.InitSnowflake(1, 1); err != nil {
		panic(err)
	}
}

func main() {
	Init()

	closer := jaeger.InitTracer("vidtube")
	defer closer.Close()

	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(mw.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"status_code": errno.ServiceErrCode,
				"data":        nil,
				"message":     fmt.Sprintf("internal error: %v", err),
				"success":     false,
			})
		})))

	register(r)
	r.Spin()
}
