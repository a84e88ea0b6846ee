package infra

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultDBName = "foody-client-db"

// SetupDB connects to MongoDB and returns the application database.
// MONGO_URI wins when set; otherwise the Atlas SRV URI is built from
// DB_USER and DB_PASSWORD.
func SetupDB() *mongo.Database {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.mc1hfkb.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
		)
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		panic(fmt.Sprintf("Failed to ping MongoDB: %v", err))
	}
	log.Println("Pinged your deployment. You successfully connected to MongoDB!")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}
	return client.Database(dbName)
}

// SetupTokenDB opens the token blacklist database. Postgres is used when
// TOKEN_DB_NAME is set; the default is a local SQLite file.
func SetupTokenDB() *gorm.DB {
	if dbName := os.Getenv("TOKEN_DB_NAME"); dbName != "" {
		sslmode := "disable"
		if os.Getenv("ENV") == "prod" {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			os.Getenv("TOKEN_DB_HOST"),
			os.Getenv("TOKEN_DB_USER"),
			os.Getenv("TOKEN_DB_PASSWORD"),
			dbName,
			os.Getenv("TOKEN_DB_PORT"),
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			panic("Failed to connect to token blacklist database")
		}
		log.Println("Setup token blacklist postgres database")
		return db
	}

	db, err := gorm.Open(sqlite.Open("token_blacklist.db"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to token blacklist database")
	}
	log.Println("Setup token blacklist SQLite database")
	return db
}
