package wishlistControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
	"playtoy-backend/models"
)

type wishlistInput struct {
	UserID string `json:"userId"`
	ToyID  string `json:"toyId"`
}

// GET /wishList[?userId]
func ListWishlist(wishlist *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := bson.M{}
		if userID := c.Query("userId"); userID != "" {
			query["userId"] = userID
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := wishlist.Find(ctx, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the wishlist."})
			return
		}
		result := []models.WishlistEntry{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the wishlist."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /wishList
// The (userId, toyId) pair is a natural key; a second add of the same pair is
// rejected. The check and the insert are separate store calls, so the store
// itself never sees the constraint.
func AddToWishlist(wishlist *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input wishlistInput
		if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" || input.ToyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and toyId are required."})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		count, err := wishlist.CountDocuments(ctx, bson.M{"userId": input.UserID, "toyId": input.ToyID})
		if err != nil {
			log.Printf("Error adding to wishlist: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding to the wishlist."})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Item already in wishlist."})
			return
		}

		res, err := wishlist.InsertOne(ctx, models.WishlistEntry{UserID: input.UserID, ToyID: input.ToyID})
		if err != nil {
			log.Printf("Error adding to wishlist: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding to the wishlist."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": res.InsertedID})
	}
}

// DELETE /wishList?userId&toyId
func RemoveFromWishlist(wishlist *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		toyID := c.Query("toyId")
		if userID == "" || toyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and toyId are required."})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := wishlist.DeleteOne(ctx, bson.M{"userId": userID, "toyId": toyID})
		if err != nil {
			log.Printf("Error deleting item from wishlist: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the item"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item successfully removed from wishlist"})
	}
}
