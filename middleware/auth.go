package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
	"playtoy-backend/models"
	"playtoy-backend/utils"
)

// RequireAuth validates the token carried by the configured transport and
// stores the decoded identity in the request context.
func RequireAuth(c *gin.Context) {
	var tokenStr string
	switch config.App.AuthTransport {
	case config.TransportBearer:
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
	default:
		tokenStr, _ = c.Cookie("token")
	}
	if tokenStr == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}

	claims, err := utils.VerifyToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	c.Set("email", claims.Email)
	c.Set("name", claims.Name)
	c.Next()
}

// RequireAdmin looks up the authenticated user and rejects anyone whose role
// is not "admin". Runs after RequireAuth. Every failure path aborts.
func RequireAdmin(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": true, "message": "User not found"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Failed to verify admin"})
			return
		}
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "You are not an admin"})
			return
		}
		c.Next()
	}
}
