package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role" json:"role"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Price       float64            `bson:"price" json:"price"`
	Reviews     int                `bson:"reviews" json:"reviews"`
	Stars       float64            `bson:"stars" json:"stars"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Features    []string           `bson:"features" json:"features"`
}

// WishlistEntry is one (userId, toyId) pair; the pair is unique per user,
// enforced by the add handler rather than the store.
type WishlistEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID string             `bson:"userId" json:"userId"`
	ToyID  string             `bson:"toyId" json:"toyId"`
}

// CartEntry carries a denormalized copy of the product fields the storefront
// shows; userId holds the customer's email.
type CartEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID   string             `bson:"userId" json:"userId"`
	ToyID    string             `bson:"toyId" json:"toyId"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image" json:"image"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Author      string             `bson:"author" json:"author"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image" json:"image"`
	ReadTime    string             `bson:"readTime" json:"readTime"`
	PublishDate string             `bson:"publishDate" json:"publishDate"`
	Content     string             `bson:"content" json:"content"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
