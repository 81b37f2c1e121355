package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend selects which storage implementation the server runs on.
const (
	BackendPgsql    = "pgsql"
	BackendJSONFile = "jsonfile"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageBackend string
	DataFilePath   string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bcrypt hash of the shared unlock password. When empty the unlock
	// endpoint accepts nothing.
	UnlockPasswordHash string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_BACKEND", BackendPgsql)
	viper.SetDefault("DATA_FILE_PATH", "./data/advances.json")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "advance-ledger-app")
	viper.SetDefault("UNLOCK_PASSWORD_HASH", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.StorageBackend = viper.GetString("STORAGE_BACKEND")
	if cfg.StorageBackend != BackendPgsql && cfg.StorageBackend != BackendJSONFile {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %q or %q", cfg.StorageBackend, BackendPgsql, BackendJSONFile)
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StorageBackend == BackendPgsql {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.DataFilePath = viper.GetString("DATA_FILE_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.UnlockPasswordHash = viper.GetString("UNLOCK_PASSWORD_HASH")
	if cfg.UnlockPasswordHash == "" {
		log.Println("Warning: UNLOCK_PASSWORD_HASH not set. The unlock endpoint will reject every password.")
	}

	return cfg, nil
}
