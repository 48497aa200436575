package middleware

import (
	"net/http"
	"strings"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/redis_repo"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/token"
	"github.com/gin-gonic/gin"
)

const (
	// ActorKey gin context內已驗證身份的key
	ActorKey = "actor"
	// SessionCookieName session cookie名稱
	SessionCookieName = "session_token"

	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
)

// ResolveActor 嘗試從session cookie或bearer token解析身份
// 解析不到不中斷請求，訪客下單走同一條路徑
func ResolveActor(sessionRepo *redis_repo.SessionRepo, tokenMaker *token.JWTMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// session優先
		if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
			if actor, err := sessionRepo.Get(c.Request.Context(), cookie); err == nil {
				c.Set(ActorKey, actor)
				c.Next()
				return
			}
		}

		// 再試 bearer token
		authHeader := c.GetHeader(authorizationHeaderKey)
		if authHeader != "" {
			fields := strings.Fields(authHeader)
			if len(fields) == 2 && strings.ToLower(fields[0]) == authorizationTypeBearer {
				if actor, err := tokenMaker.VerifyToken(fields[1]); err == nil {
					c.Set(ActorKey, actor)
				}
			}
		}

		c.Next()
	}
}

// RequireAuth 驗證是否有已解析的身份
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		c.Next()
	}
}

// RequireAdmin 驗證管理權限，須接在ResolveActor之後
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		if !actor.HasAdminPrivilege() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only."})
			return
		}
		c.Next()
	}
}

// GetActor 取出已驗證身份，沒有則回傳nil
func GetActor(c *gin.Context) *model.Actor {
	v, ok := c.Get(ActorKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*model.Actor)
	if !ok {
		return nil
	}
	return actor
}
