package config

import (
	"fmt"
	"log"
	"os"
)

// App holds the runtime configuration loaded from environment variables.
// Each resource type persists in its own DynamoDB table.
type App struct {
	Env              string
	HTTPPort         string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
	DynamoEndpoint   string
	ParticipantTable string
	AnnounceTable    string
	ScheduleTable    string
	RedisAddr        string
	RateLimitPerMin  int
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	return App{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPPort:         getEnv("PORT", "3001"),
		AWSRegion:        getEnv("AWS_REGION", "us-west-1"),
		AWSAccessKeyID:   getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoEndpoint:   getEnv("DYNAMO_ENDPOINT", ""),
		ParticipantTable: getEnv("PARTICIPANT_TABLE", "participants"),
		AnnounceTable:    getEnv("ANNOUNCE_TABLE", "announcements"),
		ScheduleTable:    getEnv("SCHEDULE_TABLE", "schedules"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RateLimitPerMin:  intEnv("RATE_LIMIT_PER_MIN", 120),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
