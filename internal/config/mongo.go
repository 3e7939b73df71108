package config

import (
	"fmt"
	"os"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI      string
	Database string
}

// NewMongoConfig creates a Mongo configuration from environment variables.
// It reads MONGODB_URI (required) and MONGODB_DATABASE (default:
// "resume_screener").
func NewMongoConfig() (*MongoConfig, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		return nil, fmt.Errorf("MONGODB_URI is required but not set")
	}

	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "resume_screener"
	}

	return &MongoConfig{URI: uri, Database: database}, nil
}
