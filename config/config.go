package config

import "os"

// Config holds application configuration
type Config struct {
	Port           string
	LogLevel       string
	OllamaURL      string
	DataFile       string
	BackupDir      string
	BackupSchedule string
	RedisAddr      string
}

// NewConfig loads configuration from environment variables. RedisAddr left
// empty selects the in-process cache.
func NewConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		OllamaURL:      getEnv("OLLAMA_URL", "http://localhost:11434/api/chat"),
		DataFile:       getEnv("DATA_FILE", "budgetwise.json"),
		BackupDir:      getEnv("BACKUP_DIR", "backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
