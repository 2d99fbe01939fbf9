// Package workout holds the pure building blocks of a workout reminder:
// day classification, alias keys, message rendering and chunking.
package workout

import (
	"strings"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
)

// Classify maps a day label to its category. First matching rule wins.
func Classify(day string) domain.Category {
	name := strings.ToLower(day)
	switch {
	case strings.Contains(name, "pull"):
		return domain.CategoryPull
	case strings.Contains(name, "push"):
		return domain.CategoryPush
	case strings.Contains(name, "leg"):
		return domain.CategoryLegs
	case strings.Contains(name, "cardio"):
		return domain.CategoryCardio
	default:
		return domain.CategoryGeneral
	}
}
