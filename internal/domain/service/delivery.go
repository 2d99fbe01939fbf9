package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/workout-reminder-bot/internal/logger"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Credentials are the static Slack settings used to deliver reminders
type Credentials struct {
	Token      string
	TeamID     string // optional, checked against the token's workspace
	SenderName string
	Recipients []string
}

type deliveryService struct {
	slackClient contract.SlackClient
	creds       Credentials
	log         *zap.Logger
}

func newDelivery(slackClient contract.SlackClient, creds Credentials, log *zap.Logger) *deliveryService {
	return &deliveryService{
		slackClient: slackClient,
		creds:       creds,
		log:         log,
	}
}

// Validate checks credentials and recipients before anything is sent
func (s *deliveryService) Validate(ctx context.Context) error {
	if err := s.checkCredentials(); err != nil {
		return err
	}

	if s.creds.TeamID == "" {
		return nil
	}

	resp, err := s.slackClient.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: auth test failed: %v", domain.ErrAuth, err)
	}
	if resp.TeamID != s.creds.TeamID {
		return fmt.Errorf("%w: token belongs to team %s, expected %s", domain.ErrAuth, resp.TeamID, s.creds.TeamID)
	}

	return nil
}

// Deliver posts every part to every recipient, in order.
// The first failed post stops the remaining ones; the deliveries made so far are returned with the error.
func (s *deliveryService) Deliver(ctx context.Context, parts []entity.MessagePart) ([]entity.Delivery, error) {
	if err := s.checkCredentials(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, s.log)

	var deliveries []entity.Delivery
	for _, recipient := range s.creds.Recipients {
		for _, part := range parts {
			_, ts, err := s.slackClient.PostMessageContext(ctx, recipient, s.messageOptions(part)...)
			if err != nil {
				return deliveries, fmt.Errorf("failed to send part %d/%d to %s: %w", part.Index, part.Total, recipient, err)
			}

			log.Info("Sent workout part",
				zap.String("recipient", recipient),
				zap.Int("part", part.Index),
				zap.Int("total", part.Total),
				zap.String("ts", ts))

			deliveries = append(deliveries, entity.Delivery{
				Recipient: recipient,
				PartIndex: part.Index,
				ID:        ts,
			})
		}
	}

	return deliveries, nil
}

func (s *deliveryService) checkCredentials() error {
	if s.creds.Token == "" {
		return fmt.Errorf("%w: SLACK_BOT_TOKEN is not set", domain.ErrAuth)
	}
	if len(s.creds.Recipients) == 0 {
		return fmt.Errorf("%w: SLACK_RECIPIENTS is empty", domain.ErrAuth)
	}
	return nil
}

func (s *deliveryService) messageOptions(part entity.MessagePart) []slack.MsgOption {
	options := []slack.MsgOption{
		slack.MsgOptionText(part.Text, false),
		slack.MsgOptionAsUser(false),
	}
	if s.creds.SenderName != "" {
		options = append(options, slack.MsgOptionUsername(s.creds.SenderName))
	}
	return options
}
