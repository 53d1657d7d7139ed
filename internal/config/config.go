package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Warehouse WarehouseConfig
	Cache     CacheConfig
	Jobs      JobsConfig
	LogLevel  string
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// WarehouseConfig points at the pricing warehouse database.
type WarehouseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	CommandCenterTTLSec int
}

// JobsConfig configures the notebook-run API used to persist approved changes.
type JobsConfig struct {
	BaseURL          string
	Token            string
	ClusterID        string
	NotebookBasePath string
	PollIntervalSec  int
	TimeoutSec       int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "pricing")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_COMMAND_CENTER_TTL_SECONDS", 300)
		viper.SetDefault("JOBS_BASE_URL", "")
		viper.SetDefault("JOBS_TOKEN", "")
		viper.SetDefault("JOBS_CLUSTER_ID", "")
		viper.SetDefault("JOBS_NOTEBOOK_BASE_PATH", "/pricing/notebooks")
		viper.SetDefault("JOBS_POLL_INTERVAL_SECONDS", 5)
		viper.SetDefault("JOBS_TIMEOUT_SECONDS", 120)
		viper.SetDefault("LOG_LEVEL", "info")

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Warehouse: WarehouseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				CommandCenterTTLSec: viper.GetInt("CACHE_COMMAND_CENTER_TTL_SECONDS"),
			},
			Jobs: JobsConfig{
				BaseURL:          viper.GetString("JOBS_BASE_URL"),
				Token:            viper.GetString("JOBS_TOKEN"),
				ClusterID:        viper.GetString("JOBS_CLUSTER_ID"),
				NotebookBasePath: viper.GetString("JOBS_NOTEBOOK_BASE_PATH"),
				PollIntervalSec:  viper.GetInt("JOBS_POLL_INTERVAL_SECONDS"),
				TimeoutSec:       viper.GetInt("JOBS_TIMEOUT_SECONDS"),
			},
			LogLevel: viper.GetString("LOG_LEVEL"),
		}
	})

	return instance
}
