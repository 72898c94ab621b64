// internal/workers/communication/send-results-email/models.go
package sendresultsemail

import "footprint-workers/internal/models"

// Input reads the recipient and the figures produced by calculate-footprint.
type Input = models.ResultsEmailRequest

type Output struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	Notifications []models.Notification `json:"notifications"`
}
