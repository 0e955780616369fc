package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	LogFile  string
}

func Load() Config {
	// Best effort; deployments usually inject env directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "equisport"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, MongoURI: uri, MongoDB: dbName, LogFile: logFile}
	// The URI stays out of the log line: it can carry credentials.
	log.Printf("[config] PORT=%s MONGO_DB=%s LOG_FILE=%s", cfg.Port, cfg.MongoDB, cfg.LogFile)
	return cfg
}
