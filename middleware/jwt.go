package middleware

import (
	"strings"

	"hrms-http-service/config"
	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"
	"hrms-http-service/services"

	"github.com/gin-gonic/gin"
)

var (
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
)

// InitAuthMiddleware initializes the authentication middleware. The Redis
// service is optional; without it logged-out tokens stay valid until expiry.
func InitAuthMiddleware(cfg *config.Config, redis services.InterfaceRedisService) {
	jwtService = services.NewJWTService(cfg)
	redisService = redis
}

// extractToken strips the Bearer prefix from an Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// sessionClaims validates the Authorization header of a request and returns
// the session claims, or nil when the request carries no valid session.
func sessionClaims(c *gin.Context) *services.JWTClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	claims, err := jwtService.ExtractClaims(extractToken(authHeader))
	if err != nil {
		return nil
	}

	if redisService != nil && claims.ID != "" {
		if blacklisted, err := redisService.IsTokenBlacklisted(claims.ID); err == nil && blacklisted {
			return nil
		}
	}
	return claims
}

// IsAuthenticated reports whether the request carries a valid admin session
func IsAuthenticated(c *gin.Context) bool {
	return sessionClaims(c) != nil
}

// AuthenticateAdmin requires a valid admin session token
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required", nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid token: "+err.Error(), nil)
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Insufficient permissions: requires admin role", nil)
			c.Abort()
			return
		}

		if redisService != nil && claims.ID != "" {
			if blacklisted, err := redisService.IsTokenBlacklisted(claims.ID); err == nil && blacklisted {
				response.FailWithMessage(c, code.ErrTokenInvalid, "Session has been logged out", nil)
				c.Abort()
				return
			}
		}

		// Store the session in the request context
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("claims", claims)
		c.Next()
	}
}
