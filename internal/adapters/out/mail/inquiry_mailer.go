package mail

import (
	"context"
	"fmt"
	"strings"

	inquirydom "greenhaven/internal/domain/inquiry"
)

// InquiryMailer forwards new contact-form inquiries to the shop inbox.
// Implements usecase.InquiryNotifierPort.
type InquiryMailer struct {
	client      EmailClient
	fromAddress string
	shopInbox   string
}

func NewInquiryMailer(client EmailClient, fromAddress, shopInbox string) *InquiryMailer {
	return &InquiryMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
		shopInbox:   strings.TrimSpace(shopInbox),
	}
}

func (m *InquiryMailer) NotifyInquiry(ctx context.Context, q *inquirydom.Inquiry) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("inquiry_mailer: not configured")
	}
	if q == nil {
		return inquirydom.ErrInvalidInquiry
	}

	subject := fmt.Sprintf("[inquiry] %s", q.Subject)
	if strings.TrimSpace(q.Subject) == "" {
		subject = "[inquiry] (no subject)"
	}

	body := fmt.Sprintf(
		"New inquiry %s\n\nFrom: %s <%s>\nReceived: %s\n\n%s\n",
		q.ID,
		q.Name,
		q.Email,
		q.CreatedAt.Format("2006-01-02 15:04:05 UTC"),
		q.Body,
	)

	return m.client.Send(ctx, m.fromAddress, m.shopInbox, subject, body)
}
