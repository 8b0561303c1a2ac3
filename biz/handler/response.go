package handler

import (
	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	StatusCode int64       `json:"status_code"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse pack response; the errno code doubles as the HTTP status.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), Response{
		StatusCode: Err.ErrCode,
		Data:       data,
		Message:    Err.ErrMsg,
		Success:    Err.ErrCode < 400,
	})
}

// pathID parses a required positive path parameter.
func pathID(c *app.RequestContext, name string) (int64, error) {
	id, err := utils.ConvertStringToInt64(c.Param(name))
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage("invalid " + name)
	}
	return id, nil
}

// queryInt parses an optional numeric query parameter; a present but
// non-numeric value is a client error, not a silent default.
func queryInt(c *app.RequestContext, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := utils.ConvertStringToInt64(raw)
	if err != nil {
		return 0, errno.ParamErr.WithMessage("invalid " + name)
	}
	return v, nil
}

func pageParams(c *app.RequestContext) (int64, int64, error) {
	page, err := queryInt(c, "page", constants.DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(c, "limit", constants.DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

type ContentParam struct {
	Content string `json:"content" form:"content"`
}

type PlaylistParam struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
