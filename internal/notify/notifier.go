// Package notify delivers footprint results by email (SES) and SMS (SNS).
package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// ErrEmailSendFailed marks a rejected or failed SES send.
var ErrEmailSendFailed = stderrors.New("email send failed")

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	ResultsURL   string
}

// Result lists one delivery record per channel.
type Result struct {
	Notifications []models.Notification `json:"notifications"`
}

type Notifier struct {
	config    Config
	sesClient SESService
	snsClient SNSService
	logger    logger.Logger
	now       func() time.Time
}

func NewNotifier(config Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Notifier{
		config:    config,
		sesClient: sesClient,
		snsClient: snsClient,
		logger:    log.With(map[string]interface{}{"component": "notifier"}),
		now:       time.Now,
	}
}

// SendResults validates the request, mails the results and, when a phone
// number is given, texts a short summary. Only an email failure is returned
// as an error; SMS is best effort.
func (n *Notifier) SendResults(ctx context.Context, req *models.ResultsEmailRequest) (*Result, error) {
	if err := ValidateResultsRequest(req); err != nil {
		return nil, err
	}

	sentAt := n.now().UTC().Format(time.RFC3339)
	result := &Result{}

	emailStatus := StatusDisabled
	if n.config.EmailEnabled && n.sesClient != nil {
		msg, err := RenderResultsEmail(n.config.FromEmail, req.Email, n.config.ResultsURL, req.Results)
		if err != nil {
			return nil, errors.NewNotificationSendFailedError(ChannelEmail, err)
		}
		if err := n.sendEmail(ctx, msg); err != nil {
			n.logger.Error("Results email send failed", map[string]interface{}{
				"error": err.Error(),
				"email": req.Email,
			})
			return nil, errors.NewNotificationSendFailedError(ChannelEmail, err)
		}
		emailStatus = StatusSent
	}
	result.Notifications = append(result.Notifications, models.Notification{
		ID:      uuid.New().String(),
		Channel: ChannelEmail,
		Status:  emailStatus,
		SentAt:  sentAt,
	})

	if req.Phone != "" {
		smsStatus := StatusDisabled
		if n.config.SMSEnabled && n.snsClient != nil {
			smsStatus = StatusSent
			if err := n.sendSMS(ctx, req.Phone, SMSSummary(req.Results, n.config.ResultsURL)); err != nil {
				n.logger.Warn("Results SMS send failed", map[string]interface{}{
					"error": err.Error(),
				})
				smsStatus = StatusFailed
			}
		}
		result.Notifications = append(result.Notifications, models.Notification{
			ID:      uuid.New().String(),
			Channel: ChannelSMS,
			Status:  smsStatus,
			SentAt:  sentAt,
		})
	}

	n.logger.Info("Results delivered", map[string]interface{}{
		"email":       req.Email,
		"emailStatus": emailStatus,
		"channels":    len(result.Notifications),
	})

	return result, nil
}

func (n *Notifier) sendEmail(ctx context.Context, msg *models.EmailMessage) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body)},
				Html: &types.Content{Data: aws.String(msg.HTMLBody)},
			},
		},
		Source: aws.String(msg.From),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

func (n *Notifier) sendSMS(ctx context.Context, to, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}
