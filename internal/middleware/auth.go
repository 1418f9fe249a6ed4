package middleware

import (
	"net/http"
	"strings"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	ClaimsKey = "claims"

	revokedTokenPrefix = "revoked:"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	JTI       string `json:"jti"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and rejects
// tokens whose jti was denylisted by sign-out. Redis being down fails open:
// a valid signature still gets through.
func JWTAuth(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido ou expirado"))
			return
		}

		if rdb != nil && claims.JTI != "" {
			if n, err := rdb.Exists(c.Request.Context(), revokedTokenPrefix+claims.JTI).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão encerrada"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// AccountID parses the authenticated account id, uuid.Nil when absent.
func AccountID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return uuid.Nil
	}
	claims, ok := v.(*JWTClaims)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
