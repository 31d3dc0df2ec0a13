package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile        string        // Optional: path to SQLite database file, ":memory:" for a throwaway store (default: ./ballot.db)
	PepperFile          string        // Optional: path to the identity fingerprint pepper (default: ./pepper)
	CandidatesFile      string        // Optional: YAML roster; empty uses the built-in candidates
	ReceiptKeyFile      string        // Optional: Ed25519 PEM key for receipts; empty generates one per process (default: ./receipt.pem)
	ReceiptKeyID        string        // Optional: kid published in the JWKS (default: receipt-1)
	Issuer              string        // Optional: iss claim of receipts (default: ballot)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	CORSOrigin          string        // Allowed browser origins, comma separated (default: *)
	RequestTimeout      time.Duration // Per-request deadline (default: 5s)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	AuditInterval       time.Duration // Background ledger audit interval (default: 5m)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile:        getEnvOrDefault("BALLOT_DATABASE_FILE", "ballot.db"),
		PepperFile:          getEnvOrDefault("BALLOT_PEPPER_FILE", "pepper"),
		CandidatesFile:      os.Getenv("BALLOT_CANDIDATES_FILE"),
		ReceiptKeyFile:      getEnvOrDefault("BALLOT_RECEIPT_KEY_FILE", "receipt.pem"),
		ReceiptKeyID:        getEnvOrDefault("BALLOT_RECEIPT_KEY_ID", "receipt-1"),
		Issuer:              getEnvOrDefault("BALLOT_RECEIPT_ISSUER", "ballot"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		CORSOrigin:          getEnvOrDefault("CORS_ORIGIN", "*"),
		RequestTimeout:      getEnvDurationOrDefault("REQUEST_TIMEOUT", 5*time.Second),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		AuditInterval:       getEnvDurationOrDefault("AUDIT_INTERVAL", 5*time.Minute),
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing default ".env" is not an error; a missing explicit
// path is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
