package mail

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

const (
	envSendGridAPIKey = "SENDGRID_API_KEY"
	envSendGridFrom   = "SENDGRID_FROM"  // e.g. no-reply@greenhaven.shop
	envShopInbox      = "SHOP_INBOX"     // where inquiry mail lands

	// Secret Manager fallback when SENDGRID_API_KEY is not set.
	sendGridSecretID = "greenhaven-sendgrid-key"
)

// NewInquiryMailerWithSendGrid wires the SendGrid-backed InquiryMailer.
//
// API key resolution order:
//  1. SENDGRID_API_KEY env
//  2. Secret Manager secret "greenhaven-sendgrid-key" (latest version),
//     when a client and project id are available
//
// Returns nil when no key can be resolved; the inquiry flow then runs
// without notification mail.
func NewInquiryMailerWithSendGrid(ctx context.Context, sm *secretmanager.Client, projectID string) *InquiryMailer {
	apiKey := strings.TrimSpace(os.Getenv(envSendGridAPIKey))
	if apiKey == "" && sm != nil && strings.TrimSpace(projectID) != "" {
		key, err := loadSecret(ctx, sm, projectID, sendGridSecretID)
		if err != nil {
			log.Printf("[mail] WARN: sendgrid key from Secret Manager failed: %v", err)
		} else {
			apiKey = key
		}
	}
	if apiKey == "" {
		log.Printf("[mail] WARN: no SendGrid API key resolved; inquiry mail disabled")
		return nil
	}

	fromAddr := strings.TrimSpace(os.Getenv(envSendGridFrom))
	shopInbox := strings.TrimSpace(os.Getenv(envShopInbox))
	if fromAddr == "" || shopInbox == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM/SHOP_INBOX incomplete (from=%q inbox=%q); inquiry mail disabled",
			fromAddr, shopInbox)
		return nil
	}

	log.Printf("[mail] InquiryMailer initialized from=%s inbox=%s", fromAddr, shopInbox)
	return NewInquiryMailer(NewSendGridClient(apiKey), fromAddr, shopInbox)
}

func loadSecret(ctx context.Context, sm *secretmanager.Client, projectID, secretID string) (string, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Payload == nil {
		return "", fmt.Errorf("secret %s: empty payload", secretID)
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
