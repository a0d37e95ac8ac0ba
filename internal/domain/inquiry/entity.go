package inquiry

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("inquiry: not found")
	ErrInvalidInquiry = errors.New("inquiry: invalid")
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Inquiry is a contact-form message from the storefront.
// docId = ID (Firestore collection "inquiries").
type Inquiry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	Status Status `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(id, name, email, subject, body string, now time.Time) (*Inquiry, error) {
	q := &Inquiry{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Subject:   strings.TrimSpace(subject),
		Body:      strings.TrimSpace(body),
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if q.ID == "" || q.Email == "" || q.Body == "" {
		return nil, ErrInvalidInquiry
	}
	if !strings.Contains(q.Email, "@") {
		return nil, ErrInvalidInquiry
	}
	return q, nil
}
