// internal/models/notification.go
package models

// Notification records one results delivery attempt.
type Notification struct {
	ID      string `json:"id"`
	Channel string `json:"channel"` // "email", "sms"
	Status  string `json:"status"`  // "sent", "failed", "disabled"
	SentAt  string `json:"sentAt"`
}

// ResultsEmailRequest asks for a footprint summary to be mailed.
type ResultsEmailRequest struct {
	Email   string          `json:"email"`
	Phone   string          `json:"phone,omitempty"`
	Results *ResultsSummary `json:"results"`
}

// EmailMessage is a rendered message ready for delivery.
type EmailMessage struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	HTMLBody string `json:"htmlBody"`
}
