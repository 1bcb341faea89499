package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
)

// GET /reviews
// Reviews are free-form documents written by the storefront; served as-is.
func ListReviews(reviews *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := reviews.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching reviews."})
			return
		}
		result := []bson.M{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching reviews."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
