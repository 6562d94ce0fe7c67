package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "barberbook/database/repository/user"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

const authCacheTTL = time.Hour

// JWTAuthMiddleware authenticates requests with a bearer token. The token
// hash is checked against the auth cache first and falls back to Mongo on
// a miss. On success the account's ID and role are set in the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()

		hashMatches := false
		if cachedHash, err := authCache.Get(ctx, cacheKey).Result(); err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
			hashMatches = true
		}

		// Cache miss: verify against the stored hash and repopulate.
		userRec, err := users.GetByID(userID)
		if err != nil || userRec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account data not found"})
			return
		}
		if !hashMatches {
			if userRec.TokenHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
			_ = authCache.Set(ctx, cacheKey, computedHash, authCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("userRole", userRec.Role)
		c.Next()
	}
}
