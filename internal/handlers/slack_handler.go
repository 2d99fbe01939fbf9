package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/workout-reminder-bot/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	workoutService contract.WorkoutService
	signingSecret  string
	log            *zap.Logger
}

func New(workoutService contract.WorkoutService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		workoutService: workoutService,
		signingSecret:  signingSecret,
		log:            log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.log.Info("Slash command received",
		zap.String("command", string(cmd.Type)),
		zap.String("user_id", s.UserID),
		zap.String("channel_id", s.ChannelID))

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleHealth answers liveness probes
func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(ctx)
	case slackcmd.CmdToday:
		return h.handlePreview(h.workoutService.Preview(ctx))
	case slackcmd.CmdShow:
		return h.handlePreview(h.workoutService.Show(ctx, cmd.Arg()))
	case slackcmd.CmdDay:
		return h.handlePreview(h.workoutService.ShowDay(ctx, cmd.Arg()))
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleList(ctx context.Context) *slack.Msg {
	entries, err := h.workoutService.ListAliases(ctx)
	if err != nil {
		return h.serviceError("Failed to list workouts", err)
	}

	if len(entries) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The workout plan has no days yet.",
		}
	}

	var list strings.Builder
	list.WriteString("*Workout aliases:*\n")
	for _, e := range entries {
		list.WriteString(fmt.Sprintf("• `%s` → %s\n", e.Alias, e.Day))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handlePreview(preview *entity.Preview, err error) *slack.Msg {
	if err != nil {
		return h.serviceError("Failed to render workout", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("_Preview, %d part(s), not sent_\n\n%s", len(preview.Parts), preview.Body),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError shows lookup errors as they are and hides the details of anything else
func (h *SlackHandler) serviceError(message string, err error) *slack.Msg {
	var lookupErr *domain.LookupError
	if errors.As(err, &lookupErr) {
		return h.createErrorResponse(lookupErr.Error())
	}

	h.log.Error(message, zap.Error(err))
	return h.createErrorResponse(message)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
