package blogControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
	"playtoy-backend/models"
)

type blogInput struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ReadTime    string `json:"readTime"`
	PublishDate string `json:"publishDate"`
	Content     string `json:"content"`
}

// GET /blogs
func ListBlogs(blogs *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := blogs.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching blogs."})
			return
		}
		result := []models.Blog{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching blogs."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GET /blog/:id
func GetBlog(blogs *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog ID"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var blog models.Blog
		err = blogs.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch blog"})
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// PUT /blogs/:id
// Applies the posted fields and stamps updatedAt server-side.
func UpdateBlog(blogs *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid blog ID"})
			return
		}
		var input blogInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input"})
			return
		}

		set := bson.M{"updatedAt": time.Now()}
		if input.Author != "" {
			set["author"] = input.Author
		}
		if input.Title != "" {
			set["title"] = input.Title
		}
		if input.Image != "" {
			set["image"] = input.Image
		}
		if input.ReadTime != "" {
			set["readTime"] = input.ReadTime
		}
		if input.PublishDate != "" {
			set["publishDate"] = input.PublishDate
		}
		if input.Content != "" {
			set["content"] = input.Content
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		res, err := blogs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			log.Printf("Error updating blog: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update blog"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found or no changes made"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully"})
	}
}
