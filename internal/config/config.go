package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	UploadDir   string
	TablePrefix string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5000,http://localhost:3000"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		TablePrefix: getTablePrefix(),
		// Debug defaults to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// CORSOriginList splits the comma-separated CORS_ORIGINS value into
// individual origins, trimming whitespace and dropping empty entries so a
// value like "http://a.com, http://b.com" matches both origins.
func (c *Config) CORSOriginList() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix, empty unless overridden.
// The default schema uses the bare table names (documents, nodes, content);
// a prefix lets several deployments share one database.
func getTablePrefix() string {
	return os.Getenv("TABLE_PREFIX")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
