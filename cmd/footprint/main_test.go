package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/models"
	"footprint-workers/internal/pipeline"
	sendresultsemail "footprint-workers/internal/workers/communication/send-results-email"
	calculatefootprint "footprint-workers/internal/workers/footprint/calculate-footprint"
	"footprint-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestCalculateCommand(t *testing.T) {
	path := writeFile(t, "request.json", `{
		"userId": "alice",
		"userInput": {"housing": {"monthlyElectricityBill": 120, "usesNaturalGas": true, "monthlyNaturalGasBill": 60}}
	}`)

	out, err := execute(t, "", "calculate", path)
	require.NoError(t, err)

	var envelope models.ResultEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "alice", envelope.UserID)
	assert.InDelta(t, 6960.0, envelope.EmissionsByCategory.Housing, 1e-9)
	assert.InDelta(t, 8872.5, envelope.CarbonFootprint, 1e-9)
	assert.Equal(t, pipeline.SuccessMessage, envelope.Message)
	require.NotNil(t, envelope.AIAnalysis)
	require.NotEmpty(t, envelope.AIAnalysis.Recommendations)
	assert.Equal(t, models.ImpactUnit, envelope.AIAnalysis.Recommendations[0].PotentialImpact.Unit)
}

func TestCalculateCommand_StdinAndOverride(t *testing.T) {
	out, err := execute(t, `{"userId": "ignored", "userInput": {}}`, "calculate", "--compact", "--user-id", "bob", "-")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
	var envelope models.ResultEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "bob", envelope.UserID)
	assert.InDelta(t, 1912.5, envelope.CarbonFootprint, 1e-9)
}

func TestCalculateCommand_Errors(t *testing.T) {
	tests := []struct {
		name         string
		stdin        string
		expectedCode errors.ErrorCode
	}{
		{name: "malformed", stdin: `{"userId":`, expectedCode: errors.ErrCodeParseError},
		{name: "missing input", stdin: `{"userId": "a"}`, expectedCode: errors.ErrCodeInvalidRequest},
		{name: "blank user", stdin: `{"userId": "  ", "userInput": {}}`, expectedCode: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, "calculate", "-")
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, errors.Normalize(err).Code)
		})
	}
}

func TestEmailPreviewCommand(t *testing.T) {
	summary := `{"carbonFootprint": 11872.5, "housing": 6960, "transportation": 3000, "food": 912.5, "consumption": 1000}`

	out, err := execute(t, summary, "email-preview", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Subject: Your EcoViz Carbon Footprint Results")
	assert.Contains(t, out, "11,872.50")
	assert.Contains(t, out, "196.8% higher")

	out, err = execute(t, summary, "email-preview", "--html", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "<html")
}

func TestEmailPreviewCommand_FromEnvelope(t *testing.T) {
	calc, err := execute(t, `{"userId": "carol", "userInput": {"housing": {"monthlyElectricityBill": 100}, "transportation": {"publicTransit": {"weeklyBusMiles": 20}}}}`, "calculate", "-")
	require.NoError(t, err)

	out, err := execute(t, calc, "email-preview", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Housing:")
}

func TestEmailPreviewCommand_RejectsZeroFigures(t *testing.T) {
	_, err := execute(t, `{"carbonFootprint": 1912.5, "food": 912.5, "consumption": 1000}`, "email-preview", "-")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmailValidationFailed, errors.Normalize(err).Code)
}

func TestRegistryCommands(t *testing.T) {
	shipped := filepath.Join("..", "..", "configs", "activity-registry.json")

	out, err := execute(t, "", "registry", "validate", "--path", shipped)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 activities")

	out, err = execute(t, "", "registry", "list", "--path", shipped)
	require.NoError(t, err)
	assert.Contains(t, out, calculatefootprint.TaskType)
	assert.Contains(t, out, sendresultsemail.TaskType)
}

func TestRegistryMatchesWorkers(t *testing.T) {
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)

	calc, ok := reg.Find(calculatefootprint.TaskType)
	require.True(t, ok)
	assert.Equal(t, 0, calc.Retries)

	mail, ok := reg.Find(sendresultsemail.TaskType)
	require.True(t, ok)
	assert.Equal(t, errors.GetRetryCount(errors.ErrCodeNotificationSendFailed), mail.Retries)
}

func TestRegistryValidate_RejectsUnknownErrorCode(t *testing.T) {
	path := writeFile(t, "registry.json", `{"activities": [{
		"id": "x", "displayName": "X", "category": "c", "taskType": "x",
		"implementationStatus": "planned", "errorCodes": ["NOPE"]
	}]}`)

	_, err := execute(t, "", "registry", "validate", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown error code NOPE")
}

func TestRegistrySetStatus(t *testing.T) {
	path := writeFile(t, "registry.json", `{"activities": [{
		"id": "x", "displayName": "X", "category": "c", "taskType": "x", "implementationStatus": "planned"
	}]}`)

	_, err := execute(t, "", "registry", "set-status", "x", "verified", "--path", path)
	require.NoError(t, err)

	reg, err := registry.LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, registry.StatusVerified, reg.Activities[0].ImplementationStatus)
}
