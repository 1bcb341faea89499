package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	dbClient *mongo.Client
	DB       *mongo.Database
)

// InitDB connects to MongoDB and selects the application database.
// The client is shared by every request handler for the life of the process.
func InitDB() {
	log.Println("Connecting to MongoDB at:", App.MongoURI)
	client, err := mongo.NewClient(options.Client().ApplyURI(App.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal(err)
	}
	dbClient = client
	DB = client.Database(App.DBName)
}

// CloseDB releases the shared client at shutdown.
func CloseDB() {
	if dbClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbClient.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting from MongoDB:", err)
	}
}

// Collection scopes a handle to one of the named collections.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// WithTimeout returns the context used for a single store call.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
