package notify

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/models"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock AWS Services
// ==========================

type mockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	sent          []*ses.SendEmailInput
}

func (m *mockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.sent = append(m.sent, params)
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, params, optFns...)
	}
	return &ses.SendEmailOutput{}, nil
}

type mockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
	published   []*sns.PublishInput
}

func (m *mockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.published = append(m.published, params)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, params, optFns...)
	}
	return &sns.PublishOutput{}, nil
}

// ==========================
// Helpers
// ==========================

func createTestConfig() Config {
	return Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "noreply@ecoviz.xyz",
		ResultsURL:   "https://ecoviz.xyz/results",
	}
}

func sampleResults() *models.ResultsSummary {
	return &models.ResultsSummary{
		CarbonFootprint: 11872.5,
		Housing:         6960,
		Transportation:  3000,
		Food:            912.5,
		Consumption:     1000,
	}
}

// ==========================
// SendResults
// ==========================

func TestNotifier_SendResults(t *testing.T) {
	tests := []struct {
		name           string
		config         Config
		request        *models.ResultsEmailRequest
		sesErr         error
		snsErr         error
		expectError    bool
		expectedCode   errors.ErrorCode
		expectedEmails int
		expectedSMS    int
		validateOutput func(t *testing.T, result *Result)
	}{
		{
			name:           "email only",
			config:         createTestConfig(),
			request:        &models.ResultsEmailRequest{Email: "user@example.com", Results: sampleResults()},
			expectedEmails: 1,
			validateOutput: func(t *testing.T, result *Result) {
				require.Len(t, result.Notifications, 1)
				assert.Equal(t, ChannelEmail, result.Notifications[0].Channel)
				assert.Equal(t, StatusSent, result.Notifications[0].Status)
				assert.NotEmpty(t, result.Notifications[0].ID)
			},
		},
		{
			name:           "email and sms",
			config:         createTestConfig(),
			request:        &models.ResultsEmailRequest{Email: "user@example.com", Phone: "+15551234567", Results: sampleResults()},
			expectedEmails: 1,
			expectedSMS:    1,
			validateOutput: func(t *testing.T, result *Result) {
				require.Len(t, result.Notifications, 2)
				assert.Equal(t, StatusSent, result.Notifications[1].Status)
			},
		},
		{
			name:           "sms failure does not fail delivery",
			config:         createTestConfig(),
			request:        &models.ResultsEmailRequest{Email: "user@example.com", Phone: "+15551234567", Results: sampleResults()},
			snsErr:         stderrors.New("throttled"),
			expectedEmails: 1,
			expectedSMS:    1,
			validateOutput: func(t *testing.T, result *Result) {
				require.Len(t, result.Notifications, 2)
				assert.Equal(t, StatusFailed, result.Notifications[1].Status)
			},
		},
		{
			name: "email disabled",
			config: Config{
				FromEmail:  "noreply@ecoviz.xyz",
				ResultsURL: "https://ecoviz.xyz/results",
			},
			request: &models.ResultsEmailRequest{Email: "user@example.com", Results: sampleResults()},
			validateOutput: func(t *testing.T, result *Result) {
				require.Len(t, result.Notifications, 1)
				assert.Equal(t, StatusDisabled, result.Notifications[0].Status)
			},
		},
		{
			name:           "ses failure",
			config:         createTestConfig(),
			request:        &models.ResultsEmailRequest{Email: "user@example.com", Results: sampleResults()},
			sesErr:         stderrors.New("message rejected"),
			expectError:    true,
			expectedCode:   errors.ErrCodeNotificationSendFailed,
			expectedEmails: 1,
		},
		{
			name:         "invalid email",
			config:       createTestConfig(),
			request:      &models.ResultsEmailRequest{Email: "not-an-email", Results: sampleResults()},
			expectError:  true,
			expectedCode: errors.ErrCodeEmailValidationFailed,
		},
		{
			name:         "missing results",
			config:       createTestConfig(),
			request:      &models.ResultsEmailRequest{Email: "user@example.com"},
			expectError:  true,
			expectedCode: errors.ErrCodeEmailValidationFailed,
		},
		{
			name:   "zero category figure",
			config: createTestConfig(),
			request: &models.ResultsEmailRequest{Email: "user@example.com", Results: &models.ResultsSummary{
				CarbonFootprint: 1912.5, Food: 912.5, Consumption: 1000,
			}},
			expectError:  true,
			expectedCode: errors.ErrCodeEmailValidationFailed,
		},
		{
			name:         "malformed phone",
			config:       createTestConfig(),
			request:      &models.ResultsEmailRequest{Email: "user@example.com", Phone: "call me", Results: sampleResults()},
			expectError:  true,
			expectedCode: errors.ErrCodeEmailValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sesMock := &mockSESService{}
			if tt.sesErr != nil {
				sesMock.SendEmailFunc = func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
					return nil, tt.sesErr
				}
			}
			snsMock := &mockSNSService{}
			if tt.snsErr != nil {
				snsMock.PublishFunc = func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
					return nil, tt.snsErr
				}
			}

			n := NewNotifier(tt.config, sesMock, snsMock, logger.NewTestLogger(t))
			result, err := n.SendResults(context.Background(), tt.request)

			assert.Len(t, sesMock.sent, tt.expectedEmails)
			assert.Len(t, snsMock.published, tt.expectedSMS)

			if tt.expectError {
				require.Error(t, err)
				var stdErr *errors.StandardError
				require.True(t, stderrors.As(err, &stdErr))
				assert.Equal(t, tt.expectedCode, stdErr.Code)
				if tt.sesErr != nil {
					assert.True(t, stderrors.Is(err, ErrEmailSendFailed))
				}
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, result)
			}
		})
	}
}

func TestNotifier_EmailContent(t *testing.T) {
	sesMock := &mockSESService{}
	n := NewNotifier(createTestConfig(), sesMock, nil, logger.NewNoOpLogger())

	_, err := n.SendResults(context.Background(), &models.ResultsEmailRequest{
		Email:   "user@example.com",
		Results: sampleResults(),
	})
	require.NoError(t, err)
	require.Len(t, sesMock.sent, 1)

	input := sesMock.sent[0]
	assert.Equal(t, []string{"user@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "noreply@ecoviz.xyz", *input.Source)
	assert.Equal(t, ResultsSubject, *input.Message.Subject.Data)

	html := *input.Message.Body.Html.Data
	assert.Contains(t, html, "11,872.50 kg CO2e / year")
	assert.Contains(t, html, "Housing: 6,960.0 kg CO2e")
	assert.Contains(t, html, "Food: 912.5 kg CO2e")
	assert.Contains(t, html, "196.8% higher than the global average")
	assert.Contains(t, html, "25.8% lower than the US average")
	assert.Contains(t, html, `href="https://ecoviz.xyz/results"`)

	text := *input.Message.Body.Text.Data
	assert.True(t, strings.HasPrefix(text, "Your Carbon Footprint Results: 11,872.50"))
}

// ==========================
// Formatting
// ==========================

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		expected  string
	}{
		{0, 2, "0.00"},
		{912.5, 1, "912.5"},
		{11872.5, 2, "11,872.50"},
		{1234567.891, 1, "1,234,567.9"},
		{61836, 0, "61,836"},
		{-0.04, 1, "-0.0"},
		{-2500, 1, "-2,500.0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFixed(tt.value, tt.precision))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Comparison{Percent: "50.0", Direction: "higher"}, compare(6000, 4000))
	assert.Equal(t, Comparison{Percent: "75.0", Direction: "lower"}, compare(4000, 16000))
	assert.Equal(t, Comparison{Percent: "0.0", Direction: "lower"}, compare(4000, 4000))
}

func TestEquivalencies(t *testing.T) {
	eq := equivalencies(11872.5)
	assert.Equal(t, "61,836", eq.MilesDriven)
	assert.Equal(t, "198", eq.TreeSeedlings)
}

func TestSMSSummary(t *testing.T) {
	msg := SMSSummary(sampleResults(), "https://ecoviz.xyz/results")
	assert.Equal(t, "EcoViz: your footprint is 11,872 kg CO2e/year (25.8% lower than the US average). Details: https://ecoviz.xyz/results", msg)
}
