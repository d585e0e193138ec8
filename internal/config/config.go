package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	SQLitePath string
	// JWT config
	JwtKey           []byte
	JwtIssuer        string
	JwtAudience      string
	JwtExpiryMinutes int
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; variables may come from the environment
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is not set")
	}

	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "flowdeck"
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		// Default to a data directory in the current directory
		sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", databaseName))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3008"
	}

	expiryMinutes := 60
	if v := os.Getenv("JWT_EXPIRY_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_MINUTES: %q", v)
		}
		expiryMinutes = minutes
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "flowdeck-api"
	}
	audience := os.Getenv("JWT_AUDIENCE")
	if audience == "" {
		audience = "flowdeck-app"
	}

	config := &Config{
		Port:             port,
		SQLitePath:       sqlitePath,
		JwtKey:           []byte(jwtSecret),
		JwtIssuer:        issuer,
		JwtAudience:      audience,
		JwtExpiryMinutes: expiryMinutes,
	}

	return config, nil
}
