package middleware

import (
	"errors"
	"strings"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/jwt"
	pkglogger "github.com/1000kkannoo/dnd-8th-4-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	emailKey    = "email"
	nicknameKey = "nickname"
)

// JWTAuth JWT authentication middleware. The caller is identified by the email claim.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.Fail(c, common.ResultUnauthorized)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.Fail(c, common.ResultUnauthorized)
			c.Abort()
			return
		}

		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				pkglogger.GetLogger().Debug().Str("path", c.Request.URL.Path).Msg("expired token")
			}
			common.Fail(c, common.ResultUnauthorized)
			c.Abort()
			return
		}
		if claims.Email == "" {
			common.Fail(c, common.ResultUnauthorized)
			c.Abort()
			return
		}

		c.Set(emailKey, claims.Email)
		c.Set(nicknameKey, claims.Nickname)

		c.Next()
	}
}

// GetUserEmail extracts the caller email from context
func GetUserEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}

// GetNickname extracts nickname from context
func GetNickname(c *gin.Context) string {
	return c.GetString(nicknameKey)
}
