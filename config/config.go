package config

import "os"

type Config struct {
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	HTTPPort   string
	MapsAPIKey string
	LogMode    string
}

func Load() *Config {
	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "covid19"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		MapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		LogMode:    getEnv("LOG_MODE", "dev"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
