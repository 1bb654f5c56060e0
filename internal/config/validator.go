package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present in every deployment
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"CATALOG_SOURCE",
}

// PostgresEnvVars are additionally required when CATALOG_SOURCE=postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// placeholderValues maps variables to the values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// ValidateEnvWithWarnings checks the process environment against the schema.
// Missing variables and version mismatches are errors; placeholders and
// half-configured integrations come back as warnings.
func ValidateEnvWithWarnings() ([]string, error) {
	return checkEnv(os.Getenv)
}

func checkEnv(getenv func(string) string) ([]string, error) {
	switch v := getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s); copy it from .env.example", ExpectedEnvSchemaVersion)
	default:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if strings.EqualFold(getenv("CATALOG_SOURCE"), CatalogSourcePostgres) {
		required = append(append([]string{}, RequiredEnvVars...), PostgresEnvVars...)
	}
	var missing []string
	for _, key := range required {
		if getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if getenv(key) == placeholderValues[key] {
			warnings = append(warnings, key+" still holds the .env.example placeholder")
		}
	}
	if getenv("MARKET_PRICE_URL") != "" && getenv("MARKET_PRICE_API_KEY") == "" {
		warnings = append(warnings, "MARKET_PRICE_URL is set without MARKET_PRICE_API_KEY; live price enrichment is disabled")
	}
	return warnings, nil
}
