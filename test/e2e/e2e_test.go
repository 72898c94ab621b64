// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"footprint-workers/internal/analysis"
	"footprint-workers/internal/api"
	"footprint-workers/internal/common/camunda"
	"footprint-workers/internal/common/llm"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/observability"
	"footprint-workers/internal/models"
	"footprint-workers/internal/notify"
	"footprint-workers/internal/pipeline"
)

// ==========================
// Recording AWS fakes
// ==========================

type recordingSES struct {
	mu   sync.Mutex
	sent []*ses.SendEmailInput
}

func (r *recordingSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, params)
	return &ses.SendEmailOutput{}, nil
}

type recordingSNS struct {
	mu        sync.Mutex
	published []*sns.PublishInput
}

func (r *recordingSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, params)
	return &sns.PublishOutput{}, nil
}

var obs *observability.Observability

func TestMain(m *testing.M) {
	obs = observability.New("footprint-e2e")
	code := m.Run()
	obs.Shutdown()
	os.Exit(code)
}

type stack struct {
	server *httptest.Server
	ses    *recordingSES
	sns    *recordingSNS
}

func newStack(t *testing.T, textGen llm.TextGenerator) *stack {
	t.Helper()
	log := logger.NewTestLogger(t)

	gen := analysis.NewGenerator(analysis.Config{UseExternalGenerator: textGen != nil}, textGen, log)
	orchestrator := pipeline.NewOrchestrator(gen, obs, log).WithSource("http")

	s := &stack{ses: &recordingSES{}, sns: &recordingSNS{}}
	notifier := notify.NewNotifier(notify.Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "noreply@ecoviz.xyz",
		ResultsURL:   "https://ecoviz.xyz/results",
	}, s.ses, s.sns, log)

	router := api.NewRouter(api.NewHandler(orchestrator, notifier, nil, log), "*")
	router.Handle("/metrics", promhttp.Handler())

	s.server = httptest.NewServer(router)
	t.Cleanup(s.server.Close)
	return s
}

func postJSON(t *testing.T, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func questionnaire() map[string]interface{} {
	return map[string]interface{}{
		"userId": "e2e-user",
		"userInput": map[string]interface{}{
			"housing": map[string]interface{}{
				"monthlyElectricityBill": 120,
				"usesNaturalGas":         true,
				"monthlyNaturalGasBill":  60,
			},
			"transportation": map[string]interface{}{
				"car": map[string]interface{}{
					"make":                    "Toyota",
					"model":                   "Prius",
					"year":                    2021,
					"commuteMilesOneWay":      10,
					"commuteDaysPerWeek":      5,
					"weeklyErrandsMilesRange": "25-50",
				},
				"flights": map[string]interface{}{"under3Hours": 2},
			},
			"food": map[string]interface{}{"dietDescription": "Vegan (no animal products)"},
			"consumption": map[string]interface{}{
				"shoppingFrequencyDescription": "I buy new things frequently.",
				"recycledMaterials":            []string{"Paper", "Plastic"},
			},
		},
	}
}

// ==========================
// Calculate then mail
// ==========================

func TestCalculateThenMail(t *testing.T) {
	s := newStack(t, nil)

	resp, body := postJSON(t, s.server.URL+"/calculate", questionnaire())
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var envelope models.ResultEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))

	assert.Equal(t, "e2e-user", envelope.UserID)
	assert.True(t, strings.HasPrefix(envelope.CalculationID, "e2e-user-"))
	assert.InDelta(t, envelope.EmissionsByCategory.Total(), envelope.CarbonFootprint, 1e-9)
	assert.InDelta(t, 6960, envelope.EmissionsByCategory.Housing, 1e-9)
	assert.Greater(t, envelope.EmissionsByCategory.Transportation, 0.0)
	require.NotNil(t, envelope.AIAnalysis)
	assert.Equal(t, analysis.Disclaimer, envelope.AIAnalysis.Disclaimer)
	assert.Len(t, envelope.AIAnalysis.Summary.TopContributors, analysis.TopContributorCount)

	summary := envelope.Summary()
	resp, body = postJSON(t, s.server.URL+"/mail", models.ResultsEmailRequest{
		Email:   "someone@example.com",
		Phone:   "+15551234567",
		Results: &summary,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"message": "Mail sent successfully"}`, string(body))

	require.Len(t, s.ses.sent, 1)
	assert.Equal(t, []string{"someone@example.com"}, s.ses.sent[0].Destination.ToAddresses)
	require.Len(t, s.sns.published, 1)
	assert.Equal(t, "+15551234567", *s.sns.published[0].PhoneNumber)
}

func TestExternalGeneratorFailureFallsBack(t *testing.T) {
	failing := llmFunc(func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "", llm.ErrGenerationFailed
	})
	s := newStack(t, failing)

	resp, body := postJSON(t, s.server.URL+"/calculate", questionnaire())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope models.ResultEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotNil(t, envelope.AIAnalysis)
	assert.Equal(t, analysis.Disclaimer, envelope.AIAnalysis.Disclaimer)
}

func TestMetricsExposed(t *testing.T) {
	s := newStack(t, nil)

	resp, _ := postJSON(t, s.server.URL+"/calculate", questionnaire())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metricsResp, err := http.Get(s.server.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "footprint_calculations_total")
	assert.Contains(t, buf.String(), "pipeline_runs")
}

// ==========================
// Live broker (opt-in)
// ==========================

func TestZeebeConnectivity(t *testing.T) {
	address := os.Getenv("E2E_ZEEBE_ADDRESS")
	if address == "" {
		t.Skip("E2E_ZEEBE_ADDRESS not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := camunda.NewClient(ctx, address, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.HealthCheck(ctx))
}

type llmFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

func (f llmFunc) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f(ctx, systemPrompt, userPrompt)
}
