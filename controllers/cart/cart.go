package cartControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
	"playtoy-backend/models"
)

type cartInput struct {
	UserID   string  `json:"userId"`
	ToyID    string  `json:"toyId"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// GET /cart/:email and GET /cart?userId
// The cart keys entries by the customer's email in the userId field.
func ListCart(cart *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("email")
		if userID == "" {
			userID = c.Query("userId")
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := cart.Find(ctx, bson.M{"userId": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the cart."})
			return
		}
		result := []models.CartEntry{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the cart."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /cart
// Same natural-key policy as the wishlist: one entry per (userId, toyId).
func AddToCart(cart *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input cartInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			input.UserID == "" || input.ToyID == "" || input.Name == "" ||
			input.Image == "" || input.Price == 0 || input.Quantity == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		count, err := cart.CountDocuments(ctx, bson.M{"userId": input.UserID, "toyId": input.ToyID})
		if err != nil {
			log.Printf("Error adding to cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding to the cart."})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Item already in cart."})
			return
		}

		res, err := cart.InsertOne(ctx, models.CartEntry{
			UserID:   input.UserID,
			ToyID:    input.ToyID,
			Name:     input.Name,
			Image:    input.Image,
			Price:    input.Price,
			Category: input.Category,
			Quantity: input.Quantity,
		})
		if err != nil {
			log.Printf("Error adding to cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding to the cart."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart.", "insertedId": res.InsertedID})
	}
}

// DELETE /cart/:id
func RemoveCartItem(cart *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := cart.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Printf("Error removing cart item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while removing the item."})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": res.DeletedCount})
	}
}
