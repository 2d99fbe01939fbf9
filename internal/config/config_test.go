package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("SLACK_RECIPIENTS", "")
		t.Setenv("SEND_TIME", "")
		t.Setenv("TIMEZONE", "")
		t.Setenv("MAX_MESSAGE_CHARS", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 1500, cfg.MaxMessageChars)
		assert.Equal(t, 7, cfg.SendHour)
		assert.Equal(t, 0, cfg.SendMinute)
		assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
		assert.Equal(t, "Workout Bot", cfg.SlackSenderName)
		assert.Empty(t, cfg.SlackRecipients)
	})

	t.Run("should read environment", func(t *testing.T) {
		t.Setenv("SLACK_RECIPIENTS", " C123, ,U456 ")
		t.Setenv("SEND_TIME", "18:45")
		t.Setenv("TIMEZONE", "Europe/Lisbon")
		t.Setenv("MAX_MESSAGE_CHARS", "1200")
		t.Setenv("WORKOUT_PLAN_PATH", "/plans/week.xlsx")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, []string{"C123", "U456"}, cfg.SlackRecipients)
		assert.Equal(t, 18, cfg.SendHour)
		assert.Equal(t, 45, cfg.SendMinute)
		assert.Equal(t, "Europe/Lisbon", cfg.Location.String())
		assert.Equal(t, 1200, cfg.MaxMessageChars)
		assert.Equal(t, "/plans/week.xlsx", cfg.PlanPath)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{name: "send time", key: "SEND_TIME", value: "7am"},
			{name: "timezone", key: "TIMEZONE", value: "Mars/Olympus"},
			{name: "max chars", key: "MAX_MESSAGE_CHARS", value: "-1"},
			{name: "max chars text", key: "MAX_MESSAGE_CHARS", value: "lots"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Setenv(tt.key, tt.value)
				_, err := Load()
				require.Error(t, err)
			})
		}
	})
}

func TestParseSendTime(t *testing.T) {
	hour, minute, err := ParseSendTime(" 06:30 ")
	require.NoError(t, err)
	assert.Equal(t, 6, hour)
	assert.Equal(t, 30, minute)

	_, _, err = ParseSendTime("25:00")
	require.Error(t, err)
}
