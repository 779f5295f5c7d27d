package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Tracker TrackerConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TrackerConfig carries the domain knobs: the default weekly goal handed to
// new sessions, the assistant's two pacing delays, and whether new sessions
// start with the sample log.
type TrackerConfig struct {
	DefaultWeeklyGoal float64
	WelcomeDelay      time.Duration
	TypingDelay       time.Duration
	SeedSample        bool
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env from the working directory or the project root;
	// plain environment variables work too (Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	weeklyGoal, err := strconv.ParseFloat(getEnv("DEFAULT_WEEKLY_GOAL", "50"), 64)
	if err != nil || weeklyGoal <= 0 {
		weeklyGoal = 50
	}
	welcomeDelay, _ := strconv.Atoi(getEnv("CHAT_WELCOME_DELAY_MS", "500"))
	typingDelay, _ := strconv.Atoi(getEnv("CHAT_TYPING_DELAY_MS", "1000"))
	seedSample := getEnv("SESSION_SEED_SAMPLE", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Tracker: TrackerConfig{
			DefaultWeeklyGoal: weeklyGoal,
			WelcomeDelay:      time.Duration(welcomeDelay) * time.Millisecond,
			TypingDelay:       time.Duration(typingDelay) * time.Millisecond,
			SeedSample:        seedSample,
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
