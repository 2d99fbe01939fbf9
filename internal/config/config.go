package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
)

type Config struct {
	PlanPath        string
	PlanSheet       string
	CatalogPath     string
	MaxMessageChars int
	DatabasePath    string

	SlackBotToken      string
	SlackTeamID        string
	SlackSigningSecret string
	SlackSenderName    string
	SlackRecipients    []string

	SendHour   int
	SendMinute int
	Location   *time.Location

	Port     string
	LogLevel string
}

func Load() (*Config, error) {
	maxChars, err := strconv.Atoi(getEnv("MAX_MESSAGE_CHARS", strconv.Itoa(domain.DefaultMaxMessageChars)))
	if err != nil || maxChars <= 0 {
		return nil, fmt.Errorf("invalid MAX_MESSAGE_CHARS: must be a positive integer")
	}

	sendTime := getEnv("SEND_TIME", "07:00")
	hour, minute, err := ParseSendTime(sendTime)
	if err != nil {
		return nil, err
	}

	tz := getEnv("TIMEZONE", "Asia/Kolkata")
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	return &Config{
		PlanPath:        getEnv("WORKOUT_PLAN_PATH", "Beginner_Weekly_Workout_Plan.xlsx"),
		PlanSheet:       getEnv("WORKOUT_PLAN_SHEET", ""),
		CatalogPath:     getEnv("WORKOUT_CATALOG_PATH", ""),
		MaxMessageChars: maxChars,
		DatabasePath:    getEnv("DATABASE_PATH", "./workout.db"),

		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackTeamID:        getEnv("SLACK_TEAM_ID", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackSenderName:    getEnv("SLACK_SENDER_NAME", "Workout Bot"),
		SlackRecipients:    splitList(getEnv("SLACK_RECIPIENTS", "")),

		SendHour:   hour,
		SendMinute: minute,
		Location:   location,

		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// ParseSendTime validates an HH:MM daily send time
func ParseSendTime(value string) (int, int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid SEND_TIME %q: use HH:MM", value)
	}
	return t.Hour(), t.Minute(), nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
