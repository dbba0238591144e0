package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on process environment")
	}
}

func DBinstance() *mongo.Client {
	// Load environment variables
	LoadEnv()

	MongoDb := os.Getenv("DB")
	if MongoDb == "" {
		MongoDb = "mongodb://localhost:27017"
		log.Println("DB is not set, defaulting to mongodb://localhost:27017")
	}

	fmt.Println("Connecting to MongoDB...")

	client, err := mongo.NewClient(options.Client().ApplyURI(MongoDb))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Connected to MongoDB")
	return client
}

var Client *mongo.Client = DBinstance()

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database("CafeOrder").Collection(collectionName)
}
