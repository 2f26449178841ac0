package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwthandling "github.com/recuerda-health/recall-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

// GetAndValidatePatientUserJWT is a middleware that extracts the JWT
// from the request, validates it and stores the parsed claims in the
// request context.
func GetAndValidatePatientUserJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		// Parse and validate token
		parsedToken, ok, err := jwthandling.ValidatePatientUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("token", token)
		c.Set("validatedToken", parsedToken)
	}
}

func extractToken(c *gin.Context) (token string, err error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return token, errors.New("no Authorization header found")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return token, errors.New("no token found in Authorization header")
	}
	return parts[1], nil
}
