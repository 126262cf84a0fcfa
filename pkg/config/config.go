package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SnowflakeNodeID   int64
	BcryptCost        int

	// Bootstrap manager account, created on first start when the
	// employees table is empty.
	BootstrapUsername string
	BootstrapPassword string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "itrust-backend")
	viper.SetDefault("SNOWFLAKE_NODE_ID", 1)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("BOOTSTRAP_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		expiry = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", expiryStr, expiry)
	}
	cfg.JWTExpiryDuration = expiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.SnowflakeNodeID = viper.GetInt64("SNOWFLAKE_NODE_ID")
	cfg.BcryptCost = viper.GetInt("BCRYPT_COST")
	cfg.BootstrapUsername = viper.GetString("BOOTSTRAP_USERNAME")
	cfg.BootstrapPassword = viper.GetString("BOOTSTRAP_PASSWORD")

	return cfg, nil
}
