package productControllers

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

// GET /products
func ListProducts(products *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := products.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching products."})
			return
		}
		result := []models.Product{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching products."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /products
func CreateProduct(products *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Product
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}
		input.ID = primitive.NilObjectID

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := products.InsertOne(ctx, input)
		if err != nil {
			log.Printf("Error adding product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding the item."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "productId": res.InsertedID})
	}
}

// DELETE /products/:id
func DeleteProduct(products *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := products.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Printf("Error deleting product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the item."})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": res.DeletedCount})
	}
}

// GET /toysDetails/:id
func GetProduct(products *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var product models.Product
		err = products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching the item."})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
