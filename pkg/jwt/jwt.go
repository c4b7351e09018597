package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. Token由用户服务签发,本服务只负责校验并取出用户ID
// 2. GenerateToken用于测试和本地调试
// 3. 密钥与用户服务共享(HS256)
type Manager struct {
	secret      []byte
	tokenExpire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret string, tokenExpire time.Duration) *Manager {
	return &Manager{
		secret:      []byte(secret),
		tokenExpire: tokenExpire,
	}
}

// Claims 自定义JWT Claims
// UserID用字符串编码,避免前端JS解析64位整数丢失精度
type Claims struct {
	UserID int64 `json:"user_id,string"`
	jwt.RegisteredClaims
}

const issuer = "bookhub"

// GenerateToken 签发Access Token
func (m *Manager) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenExpire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "生成Token失败")
	}
	return token, nil
}

// ParseToken 解析并验证Token
// 学习要点：
// 1. 验证签名算法(防止alg=none攻击)
// 2. 验证过期时间（exp）和生效时间（nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
