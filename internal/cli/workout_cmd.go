package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/workout-reminder-bot/internal/cli/formatter"
	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/spf13/cobra"
)

func newListKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list-keys",
		Aliases: []string{"keys"},
		Short:   "List workout aliases and the day each one sends",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Workout.ListAliases(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAliases(entries))
			return nil
		},
	}
}

func newSendKeyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "send-key <alias>",
		Short:   "Send the workout behind an alias, e.g. push1 or legs",
		Example: "  workout-bot send-key push2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatch, err := app.Workout.SendAlias(cmd.Context(), args[0])
			return printDispatch(cmd, dispatch, err)
		},
	}
}

func newSendDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "send-day <day name>",
		Short:   "Send a day by its exact name in the plan",
		Example: `  workout-bot send-day "Leg Day"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatch, err := app.Workout.SendDay(cmd.Context(), strings.Join(args, " "))
			return printDispatch(cmd, dispatch, err)
		},
	}
}

func newSendTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send-today",
		Short: "Send today's workout now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatch, err := app.Workout.SendToday(cmd.Context())
			return printDispatch(cmd, dispatch, err)
		},
	}
}

func newPreviewCmd(app *App) *cobra.Command {
	var key, day string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print today's message without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				preview *entity.Preview
				err     error
			)
			switch {
			case key != "":
				preview, err = app.Workout.Show(cmd.Context(), key)
			case day != "":
				preview, err = app.Workout.ShowDay(cmd.Context(), day)
			default:
				preview, err = app.Workout.Preview(cmd.Context())
			}
			if handled := printLookup(cmd, err); handled {
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreview(preview))
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Preview the day behind an alias instead of today's")
	cmd.Flags().StringVar(&day, "day", "", "Preview a day by its exact name instead of today's")
	cmd.MarkFlagsMutuallyExclusive("key", "day")

	return cmd
}

func newRestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rest",
		Short: "Skip today: the next scheduled send repeats the last workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Workout.MarkRestToday(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRest(state))
			return nil
		},
	}
}

// printDispatch reports a send. Unknown aliases or days are not failures.
func printDispatch(cmd *cobra.Command, dispatch *entity.Dispatch, err error) error {
	if handled := printLookup(cmd, err); handled {
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDispatch(dispatch))
	return nil
}

func printLookup(cmd *cobra.Command, err error) bool {
	var lookupErr *domain.LookupError
	if !errors.As(err, &lookupErr) {
		return false
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLookup(lookupErr))
	return true
}
