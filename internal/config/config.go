package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	MongoDB           string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Port              string
	OTLPEndpoint      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	db := os.Getenv("MONGO_DB")
	if db == "" {
		db = "techfest"
	}

	return &Config{
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           db,
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		Port:              port,
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}
