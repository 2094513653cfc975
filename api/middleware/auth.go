package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"phonekart-backend/internal/models"
)

const userKey = "authUser"

// AuthClaims is the JWT payload issued at login and resolved here.
type AuthClaims struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.StandardClaims
}

// ValidateToken gates private routes: it requires a Bearer token in the
// Authorization header, verifies it against secret, and stores the resolved
// identity in the request context.
func ValidateToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
			return
		}

		token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
			return
		}
		claims, ok := token.Claims.(*AuthClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User is not authorized"})
			return
		}

		c.Set(userKey, models.AuthUser{
			ID:        claims.UserID,
			Email:     claims.Email,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
		})
		c.Next()
	}
}

// CurrentUser returns the identity stored by ValidateToken.
func CurrentUser(c *gin.Context) (models.AuthUser, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.AuthUser{}, false
	}
	user, ok := v.(models.AuthUser)
	return user, ok
}

// SetCurrentUser injects an identity directly, bypassing token parsing.
// Handler tests use it in place of ValidateToken.
func SetCurrentUser(user models.AuthUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, user)
		c.Next()
	}
}
