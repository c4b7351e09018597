package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookhub/internal/interface/http/validation"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/jwt"
)

// contextKeyUserID gin.Context中当前用户ID的key
const contextKeyUserID = "user_id"

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 用户由外部用户服务签发Token,本服务只做校验
// 2. 读接口都允许匿名访问,所以只提供OptionalAuth
type AuthMiddleware struct {
	jwtManager *jwt.Manager
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// OptionalAuth 可选登录
// 有合法的Bearer Token时注入user_id;没有Token或Token无效都按匿名继续
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 格式：Authorization: Bearer <token>
		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := m.jwtManager.ParseToken(parts[1]); err == nil {
				c.Set(contextKeyUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

// ViewerID 当前访问者的用户ID,0表示匿名
// 优先使用Token中的用户,其次是userId查询参数
// userId存在但格式错误时返回InvalidIdentifier
func ViewerID(c *gin.Context) (int64, error) {
	if v, ok := c.Get(contextKeyUserID); ok {
		if uid, ok := v.(int64); ok && uid > 0 {
			return uid, nil
		}
	}

	raw, ok := c.GetQuery("userId")
	if !ok {
		return 0, nil
	}
	uid, err := idcodec.ParseParam(raw)
	if err != nil {
		return 0, validation.InvalidIdentifier("userId")
	}
	return uid, nil
}
