package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtoy-backend/config"
	authControllers "playtoy-backend/controllers/auth"
	blogControllers "playtoy-backend/controllers/blog"
	cartControllers "playtoy-backend/controllers/cart"
	paymentControllers "playtoy-backend/controllers/payment"
	productControllers "playtoy-backend/controllers/product"
	reviewControllers "playtoy-backend/controllers/review"
	userControllers "playtoy-backend/controllers/user"
	wishlistControllers "playtoy-backend/controllers/wishlist"
	"playtoy-backend/middleware"
)

// SetupRoutes wires every endpoint against the shared collections. Admin
// management routes are registered only when enabled in the configuration.
func SetupRoutes(r *gin.Engine) {
	users := config.Collection("users")
	reviews := config.Collection("reviews")
	products := config.Collection("products")
	wishlist := config.Collection("wishList")
	cart := config.Collection("cart")
	blogs := config.Collection("blogs")
	payments := config.Collection("payment")

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "welcome")
	})

	// Auth
	r.POST("/jwt", authControllers.IssueToken)

	// Users
	r.GET("/users", userControllers.ListUsers(users))
	r.POST("/users", userControllers.CreateUser(users))

	// Catalog
	r.GET("/reviews", reviewControllers.ListReviews(reviews))
	r.GET("/products", productControllers.ListProducts(products))
	r.GET("/toysDetails/:id", productControllers.GetProduct(products))

	// Wishlist
	r.GET("/wishList", wishlistControllers.ListWishlist(wishlist))
	r.POST("/wishList", wishlistControllers.AddToWishlist(wishlist))
	r.DELETE("/wishList", wishlistControllers.RemoveFromWishlist(wishlist))

	// Cart
	r.GET("/cart", cartControllers.ListCart(cart))
	r.GET("/cart/:email", cartControllers.ListCart(cart))
	r.POST("/cart", cartControllers.AddToCart(cart))
	r.DELETE("/cart/:id", cartControllers.RemoveCartItem(cart))

	// Blog
	r.GET("/blogs", blogControllers.ListBlogs(blogs))
	r.GET("/blog/:id", blogControllers.GetBlog(blogs))
	r.PUT("/blogs/:id", blogControllers.UpdateBlog(blogs))

	// Payments
	r.POST("/create-payment-intent", paymentControllers.CreatePaymentIntent)
	r.GET("/payments/:email", paymentControllers.ListPayments(payments))
	r.POST("/payments", paymentControllers.RecordPayment(payments, cart))

	if config.App.EnableAdminRoutes {
		r.PATCH("/users/admin/:id", userControllers.PromoteToAdmin(users))
		r.DELETE("/users/:id", userControllers.DeleteUser(users))
		r.GET("/users/admin/:email",
			middleware.RequireAuth,
			middleware.RequireAdmin(users),
			userControllers.CheckAdmin(users))
		r.POST("/products", productControllers.CreateProduct(products))
		r.DELETE("/products/:id", productControllers.DeleteProduct(products))
	}
}
