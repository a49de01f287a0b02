package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	LogLevel  string
	PrettyLog bool

	// "file" (padrão), "redis" ou "s3". Todos os backends guardam a
	// agenda como um documento único.
	StorageBackend string

	DataFile string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string

	S3Bucket    string
	S3Key       string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

func Load() *Config {
	// .env local é opcional; variáveis já exportadas têm precedência.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "3000"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		PrettyLog: getEnvBool("PRETTY_LOG", false),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),

		DataFile: getEnv("DATA_FILE", "data/appointments.json"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisKey:      getEnv("REDIS_KEY", "agenda:appointments"),

		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3Key:       getEnv("S3_KEY", "appointments.json"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
