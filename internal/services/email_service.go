package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
	"github.com/shopspring/decimal"
)

// EmailService sends notification emails through Resend. It is an optional
// collaborator: a nil *EmailService is valid and sends nothing, and send
// failures are logged, never propagated — a broken mail provider must not
// fail an admin action.
type EmailService struct {
	client *resend.Client
	from   string
}

// NewEmailService builds the service from RESEND_API_KEY and FROM_EMAIL.
// Returns nil when no API key is configured.
func NewEmailService() *EmailService {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, email notifications disabled")
		return nil
	}

	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// SendBankVerifiedEmail tells a user their payout bank was approved.
func (es *EmailService) SendBankVerifiedEmail(to, username string) {
	if es == nil || to == "" {
		return
	}
	es.send(to, "Your bank account has been verified", fmt.Sprintf(`
<p>Hi %s,</p>
<p>Your bank account has been verified. You can now submit withdrawal requests from your wallet.</p>
<p>This is an automated message, please do not reply.</p>`, username))
}

// SendWithdrawalStatusEmail tells a user their withdrawal moved to a new
// status.
func (es *EmailService) SendWithdrawalStatusEmail(to, withdrawID, status string, amount decimal.Decimal) {
	if es == nil || to == "" {
		return
	}
	es.send(to, fmt.Sprintf("Withdrawal %s is now %s", withdrawID, status), fmt.Sprintf(`
<p>Your withdrawal request <strong>%s</strong> for <strong>%s</strong> is now <strong>%s</strong>.</p>
<p>This is an automated message, please do not reply.</p>`, withdrawID, amount.StringFixed(2), status))
}

func (es *EmailService) send(to, subject, html string) {
	_, err := es.client.Emails.Send(&resend.SendEmailRequest{
		From:    es.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("❌ Failed to send %q to %s: %v", subject, to, err)
		return
	}
	log.Printf("📨 Sent %q to %s", subject, to)
}
