package userControllers

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

type signInInput struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// GET /users
func ListUsers(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := users.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching users."})
			return
		}
		result := []models.User{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching users."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /users
// Registers a user on first sign-in. Everyone starts with role "user".
func CreateUser(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input signInInput
		if err := c.ShouldBindJSON(&input); err != nil || input.DisplayName == "" || input.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "displayName and email are required."})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := users.InsertOne(ctx, models.User{
			Name:  input.DisplayName,
			Email: input.Email,
			Role:  "user",
		})
		if err != nil {
			log.Printf("Error adding user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while adding the user."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": res.InsertedID})
	}
}

// PATCH /users/admin/:id
func PromoteToAdmin(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "admin"}})
		if err != nil {
			log.Printf("Error updating user role: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if res.ModifiedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found or no changes made"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User role updated to admin", "modifiedCount": res.ModifiedCount})
	}
}

// DELETE /users/:id
func DeleteUser(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := users.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Printf("Error deleting user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while delete the user."})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": res.DeletedCount})
	}
}

// GET /users/admin/:email
// Reports whether the authenticated caller is an admin. Asking about anyone
// else's email always answers false.
func CheckAdmin(users *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != c.GetString("email") {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		if err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": user.Role == "admin"})
	}
}
