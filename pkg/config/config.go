// Файл: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Address  string
	Password string
}

// StorageConfig выбирает бэкенд блоб-хранилища.
// Driver "redis" — боевой режим, "memory" — локальная разработка
// с имитацией сетевой задержки (LatencyMin..LatencyMax).
type StorageConfig struct {
	Driver     string
	LatencyMin time.Duration
	LatencyMax time.Duration
}

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Storage StorageConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", "redis"),
			LatencyMin: getEnvDurationMs("STORE_LATENCY_MIN_MS", 200),
			LatencyMax: getEnvDurationMs("STORE_LATENCY_MAX_MS", 400),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDurationMs(key string, fallbackMs int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
