package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

type Config struct {
	ServerAddress string
	QuestionFile  string

	StoreBackend  string
	ProgressFile  string
	SQLitePath    string
	MongoURI      string
	MongoDatabase string

	RabbitURI      string
	RabbitExchange string

	CORSOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:  getenvDefault("SERVER_ADDRESS", ":8080"),
		QuestionFile:   getenvDefault("QUESTION_FILE", "data/questions.json"),
		StoreBackend:   getenvDefault("STORE_BACKEND", BackendFile),
		ProgressFile:   getenvDefault("PROGRESS_FILE", "data/progress.json"),
		SQLitePath:     getenvDefault("SQLITE_PATH", "data/progress.db"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getenvDefault("MONGO_DATABASE", "exam_service"),
		RabbitURI:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		CORSOrigins:    splitList(getenvDefault("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
