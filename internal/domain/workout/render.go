package workout

import (
	"fmt"
	"strings"

	"github.com/diegoclair/workout-reminder-bot/internal/catalog"
	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

// Renderer turns a plan day into the formatted reminder text
type Renderer struct {
	catalog *catalog.Catalog
}

func NewRenderer(c *catalog.Catalog) *Renderer {
	return &Renderer{catalog: c}
}

// Render builds the full message for day.
// Cardio days always render the fixed circuit and ignore the sheet rows.
func (r *Renderer) Render(plan *entity.Plan, day string) string {
	category := Classify(day)

	warmups := make([]string, 0)
	for _, name := range r.catalog.Warmups(category) {
		warmups = append(warmups, fmt.Sprintf("• %s\n  %s", name, RefLink(name, "warm up")))
	}

	cooldowns := make([]string, 0)
	for _, name := range r.catalog.Cooldowns(category) {
		cooldowns = append(cooldowns, fmt.Sprintf("• %s\n  %s", name, RefLink(name, "stretch")))
	}

	var entries []string
	if category == domain.CategoryCardio {
		for _, exercise := range r.catalog.CardioCircuit() {
			entries = append(entries, r.circuitEntry(exercise))
		}
	} else {
		for _, row := range plan.RowsFor(day) {
			entries = append(entries, r.rowEntry(row))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *%s*\n\n", day)
	b.WriteString("🔥 *Warm-up*\n" + strings.Join(warmups, "\n") + "\n\n")
	b.WriteString("🏋️ *Main Workout*\n" + strings.Join(entries, "\n") + "\n\n")
	b.WriteString("🧊 *Cool-down*\n" + strings.Join(cooldowns, "\n") + "\n\n")
	b.WriteString(domain.ClosingPrompt)

	return b.String()
}

func (r *Renderer) rowEntry(row entity.PlanRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- *%s*\n  %s\n  Primary: %s", row.Exercise, ExerciseLink(row.Exercise), row.PrimaryTarget)
	if row.SecondaryTarget != "" {
		b.WriteString(" | Secondary: " + row.SecondaryTarget)
	}
	if row.TertiaryTarget != "" {
		b.WriteString(" | Tertiary: " + row.TertiaryTarget)
	}
	r.writeCoaching(&b, row.Exercise)
	return b.String()
}

func (r *Renderer) circuitEntry(exercise string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- *%s*\n  %s", exercise, ExerciseLink(exercise))
	r.writeCoaching(&b, exercise)
	return b.String()
}

func (r *Renderer) writeCoaching(b *strings.Builder, exercise string) {
	if cue, ok := r.catalog.FormCue(exercise); ok {
		b.WriteString("\n  Form Cue: " + cue)
	}
	if p, ok := r.catalog.Prescription(exercise); ok {
		b.WriteString("\n  Prescription: " + p.String())
	}
}
