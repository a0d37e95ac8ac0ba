package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	inquirydom "greenhaven/internal/domain/inquiry"
)

var ErrInquiryInvalidArgument = errors.New("inquiry_usecase: invalid argument")

// InquiryNotifierPort sends the shop inbox a note about a new inquiry.
type InquiryNotifierPort interface {
	NotifyInquiry(ctx context.Context, q *inquirydom.Inquiry) error
}

// InquiryUsecase handles the storefront contact form and its back-office view.
type InquiryUsecase struct {
	repo     inquirydom.Repository
	notifier InquiryNotifierPort // optional; nil disables mail
	clock    Clock
}

func NewInquiryUsecase(repo inquirydom.Repository, notifier InquiryNotifierPort, clock Clock) *InquiryUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &InquiryUsecase{repo: repo, notifier: notifier, clock: clock}
}

// Submit stores the inquiry, then sends the notification best-effort:
// a mail failure is logged, not surfaced (the inquiry is already durable).
func (uc *InquiryUsecase) Submit(ctx context.Context, name, email, subject, body string) (*inquirydom.Inquiry, error) {
	q, err := inquirydom.New(uuid.NewString(), name, email, subject, body, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, q); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyInquiry(ctx, q); err != nil {
			log.Printf("[inquiry_usecase] WARN: notification mail failed inquiryId=%q err=%v", q.ID, err)
		}
	}
	return q, nil
}

func (uc *InquiryUsecase) List(ctx context.Context, status string, limit int) ([]inquirydom.Inquiry, error) {
	s := inquirydom.Status(strings.TrimSpace(strings.ToLower(status)))
	if s != "" && s != inquirydom.StatusOpen && s != inquirydom.StatusClosed {
		return nil, ErrInquiryInvalidArgument
	}
	return uc.repo.List(ctx, s, limit)
}

func (uc *InquiryUsecase) Close(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInquiryInvalidArgument
	}
	return uc.repo.SetStatus(ctx, id, inquirydom.StatusClosed)
}
