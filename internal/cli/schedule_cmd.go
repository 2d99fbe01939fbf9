package cli

import (
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Send today's workout every day at SEND_TIME until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// fail at start-up rather than at the first send
			if err := app.Delivery.Validate(ctx); err != nil {
				return err
			}

			next, err := app.Scheduler.NextRun(time.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(app.Scheduler.Spec(), next))

			return app.Scheduler.Run(ctx)
		},
	}
}
