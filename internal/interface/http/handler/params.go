package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookhub/internal/interface/http/validation"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/response"
)

// pathID 解析路径参数中的ID,失败时直接写400响应并返回false
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := idcodec.ParseParam(c.Param(name))
	if err != nil {
		response.Error(c, validation.InvalidIdentifier(name))
		return 0, false
	}
	return id, true
}

// bindJSON 绑定并校验请求体,失败时直接写400响应并返回false
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, validation.FromBindError(err))
		return false
	}
	return true
}
