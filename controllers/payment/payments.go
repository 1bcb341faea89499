package paymentControllers

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"playtoy-backend/config"
)

// Stripe rejects card intents below 50 minor units.
const minimumAmount = 50

// newIntent is a seam for tests; production code always hits Stripe.
var newIntent = func(amount int64) (*stripe.PaymentIntent, error) {
	return paymentintent.New(&stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	})
}

type intentInput struct {
	Price float64 `json:"price"`
}

// POST /create-payment-intent
// The amount check runs before any call leaves the process.
func CreatePaymentIntent(c *gin.Context) {
	var input intentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	amount := int64(math.Round(input.Price * 100))
	if amount < minimumAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The amount must be at least $0.50"})
		return
	}

	pi, err := newIntent(amount)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
}

// GET /payments/:email
func ListPayments(payments *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		ctx, cancel := config.WithTimeout()
		defer cancel()

		cur, err := payments.Find(ctx, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
			return
		}
		result := []bson.M{}
		if err := cur.All(ctx, &result); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error. Please try again later."})
			return
		}
		if len(result) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No payments found for this email."})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /payments
// Records the payment, then clears the cart entries it covers. The two calls
// are independent; a cleanup failure does not roll the payment back.
func RecordPayment(payments, cart *mongo.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record bson.M
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
			return
		}

		cartIDs, err := parseCartIDs(record["cartIds"])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cartIds must be valid cart item IDs"})
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		insertRes, err := payments.InsertOne(ctx, record)
		if err != nil {
			log.Printf("Error recording payment: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while recording the payment."})
			return
		}

		deleteRes, err := cart.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": cartIDs}})
		if err != nil {
			log.Printf("Error clearing paid cart entries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment recorded but cart cleanup failed."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentResult": gin.H{"acknowledged": true, "insertedId": insertRes.InsertedID},
			"deleteResult":  gin.H{"acknowledged": true, "deletedCount": deleteRes.DeletedCount},
		})
	}
}

func parseCartIDs(raw interface{}) ([]primitive.ObjectID, error) {
	items, _ := raw.([]interface{})
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
