package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	GigaChat  GigaChatConfig
	Knowledge KnowledgeConfig
	Chat      ChatConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
	GeneralModel       string
	SeniorModel        string
}

// KnowledgeConfig selects where the two tier knowledge bases are loaded
// from. Source is "csv" (default) or "postgres". With the CSV source both
// files must exist or the process refuses to start.
type KnowledgeConfig struct {
	Source     string
	GeneralCSV string
	SeniorCSV  string
}

type ChatConfig struct {
	TurnTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	turnTimeout, _ := strconv.Atoi(getEnv("CHAT_TURN_TIMEOUT", "60"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "support_desk"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
			GeneralModel:       getEnv("GIGACHAT_GENERAL_MODEL", "GigaChat"),
			SeniorModel:        getEnv("GIGACHAT_SENIOR_MODEL", "GigaChat-Pro"),
		},
		Knowledge: KnowledgeConfig{
			Source:     getEnv("KNOWLEDGE_SOURCE", "csv"),
			GeneralCSV: getEnv("KNOWLEDGE_GENERAL_CSV", "general_agent.csv"),
			SeniorCSV:  getEnv("KNOWLEDGE_SENIOR_CSV", "senior_agent.csv"),
		},
		Chat: ChatConfig{
			TurnTimeout: time.Duration(turnTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
