package mw

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"vidtube.com/config"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

var JwtMiddleware *jwt.HertzJWTMiddleware

const IdentityKey = "user_id"

// Init builds the JWT middleware. Tokens are issued by the auth service that
// shares this secret; this backend only verifies them and exposes the actor
// id to handlers.
func Init() {
	var err error
	JwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     time.Duration(config.ConfigInfo.Jwt.ExpireHours) * time.Hour,
		TokenLookup: "header: Authorization, query: token, cookie: jwt",
		IdentityKey: IdentityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[IdentityKey])
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"status_code": errno.AuthorizationFailedCode,
				"data":        nil,
				"message":     message,
				"success":     false,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

// ActorID returns the authenticated actor's id for the current request.
func ActorID(c *app.RequestContext) int64 {
	v, _ := c.Get(IdentityKey)
	return utils.Transfer(v)
}
