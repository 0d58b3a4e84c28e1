package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	RecordStore struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"record_store"`

	Directory struct {
		Backend    string `mapstructure:"backend"` // "redis" or "file"
		FilePath   string `mapstructure:"file_path"`
		StorageKey string `mapstructure:"storage_key"`
		RedisHost  string `mapstructure:"redis_host"`
		RedisPort  int    `mapstructure:"redis_port"`
	} `mapstructure:"directory"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Auth struct {
		Username     string `mapstructure:"username"`
		PasswordHash string `mapstructure:"password_hash"`
	} `mapstructure:"auth"`

	Backup struct {
		Enabled       bool   `mapstructure:"enabled"`
		Endpoint      string `mapstructure:"endpoint"`
		AccessKey     string `mapstructure:"access_key"`
		SecretKey     string `mapstructure:"secret_key"`
		Bucket        string `mapstructure:"bucket"`
		Region        string `mapstructure:"region"`
		IntervalHours int    `mapstructure:"interval_hours"`
	} `mapstructure:"backup"`

	Monitoring struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"monitoring"`
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	// Auto bind environment variables
	v.AutomaticEnv()

	// Set sensible defaults (binary works without config file)
	v.SetDefault("server.port", 8080)
	v.SetDefault("record_store.timeout_seconds", 15)
	v.SetDefault("directory.backend", "file")
	v.SetDefault("directory.file_path", "data/directory.json")
	v.SetDefault("directory.storage_key", "namePhoneData")
	v.SetDefault("directory.redis_host", "redis")
	v.SetDefault("directory.redis_port", 6379)
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "centring-backend")
	v.SetDefault("backup.region", "auto")
	v.SetDefault("backup.interval_hours", 24)
	v.SetDefault("monitoring.port", 9090)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	// Override record store endpoint from environment
	if base := os.Getenv("API_BASE_URL"); base != "" {
		cfg.RecordStore.BaseURL = base
	}
	if cfg.RecordStore.BaseURL == "" {
		log.Fatal("record store base URL not set (record_store.base_url or API_BASE_URL)")
	}

	// Override directory settings from environment variables
	if backend := os.Getenv("DIRECTORY_BACKEND"); backend != "" {
		cfg.Directory.Backend = backend
	}
	if path := os.Getenv("DIRECTORY_FILE_PATH"); path != "" {
		cfg.Directory.FilePath = path
	}
	if host := os.Getenv("REDIS_SERVICE_HOST"); host != "" {
		cfg.Directory.RedisHost = host
	}
	if port := os.Getenv("REDIS_SERVICE_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Directory.RedisPort = n
		}
	}

	// Override JWT secret from environment if not set
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			// Login is a convenience view that gates nothing; a missing
			// secret disables token issuance, not the server.
			log.Printf("[Config] JWT_SECRET not set, login tokens disabled")
		}
	}

	// Override admin credentials from environment
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.Auth.Username = user
	}
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.Auth.PasswordHash = hash
	}

	// Load backup credentials from environment variables
	if key := os.Getenv("BACKUP_ACCESS_KEY"); key != "" {
		cfg.Backup.AccessKey = key
	}
	if secret := os.Getenv("BACKUP_SECRET_KEY"); secret != "" {
		cfg.Backup.SecretKey = secret
	}
	if endpoint := os.Getenv("BACKUP_ENDPOINT"); endpoint != "" {
		cfg.Backup.Endpoint = endpoint
	}
	if bucket := os.Getenv("BACKUP_BUCKET"); bucket != "" {
		cfg.Backup.Bucket = bucket
	}

	return &cfg
}
