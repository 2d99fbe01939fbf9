package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// Header renders a section header with an underline
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// RenderBox wraps content in a rounded-border box with an optional title
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(1).
		PaddingRight(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatAliases lists aliases one per line, "alias → day"
func FormatAliases(entries []entity.AliasEntry) string {
	if len(entries) == 0 {
		return StyleDim.Render("No days in the plan.") + "\n"
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Alias))
	}

	var b strings.Builder
	b.WriteString(Header("Aliases") + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s → %s\n", StyleBold.Render(fmt.Sprintf("%-*s", width, e.Alias)), e.Day)
	}
	return b.String()
}

// FormatPreview prints every part exactly as it would be sent
func FormatPreview(p *entity.Preview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", Header("Preview"), StyleDim.Render(fmt.Sprintf("%s, %d part(s)", p.Day, len(p.Parts))))
	for i, part := range p.Parts {
		if i > 0 {
			b.WriteString("\n" + StyleDim.Render("────────") + "\n\n")
		}
		b.WriteString(part.Text + "\n")
	}
	return b.String()
}

// FormatDispatch summarises a completed send
func FormatDispatch(d *entity.Dispatch) string {
	recipients := make(map[string]bool)
	for _, delivery := range d.Deliveries {
		recipients[delivery.Recipient] = true
	}

	summary := fmt.Sprintf("%s in %d part(s) to %d recipient(s)", StyleBold.Render(d.Day), len(d.Parts), len(recipients))
	return StyleGreen.Render("✓ Sent ") + summary + "\n" + StyleDim.Render("run "+d.RunID) + "\n"
}

// FormatLookup reports an unknown alias or day with the valid options
func FormatLookup(err *domain.LookupError) string {
	return StyleYellow.Render(fmt.Sprintf("%s '%s' not found.", err.Kind, err.Key)) +
		"\nOptions: " + strings.Join(err.Options, ", ") + "\n"
}

// FormatRest confirms the rest flag
func FormatRest(state *entity.RunState) string {
	return StyleGreen.Render("✓ Rest day marked. ") +
		fmt.Sprintf("The next scheduled send repeats %s.\n", StyleBold.Render(state.LastDay))
}

// FormatSchedule describes when the scheduler fires next
func FormatSchedule(spec string, next time.Time) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		StyleDim.Render("schedule:"), spec,
		StyleDim.Render("next run:"), next.Format("Mon 02 Jan 2006 15:04 MST"))
}

// FormatError renders a fatal error line
func FormatError(err error) string {
	return StyleRed.Render("✗ "+err.Error()) + "\n"
}
