package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Scheduler runs the daily send until its context is cancelled
type Scheduler interface {
	Spec() string
	NextRun(now time.Time) (time.Time, error)
	Run(ctx context.Context) error
}

// SlashHandler answers the slash-command HTTP surface
type SlashHandler interface {
	HandleSlashCommand(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

// App holds what the commands need
type App struct {
	Workout   contract.WorkoutService
	Delivery  contract.DeliveryService
	Scheduler Scheduler
	Handler   SlashHandler
	Port      string
	Log       *zap.Logger
}

// NewRootCmd creates the top-level command. Without a subcommand it prints usage.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workout-bot",
		Short:         "Daily workout reminders from an Excel plan, delivered on Slack",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListKeysCmd(app),
		newSendKeyCmd(app),
		newSendDayCmd(app),
		newPreviewCmd(app),
		newSendTodayCmd(app),
		newScheduleCmd(app),
		newRestCmd(app),
		newServeCmd(app),
	)

	return root
}
