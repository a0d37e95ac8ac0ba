package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	inquirydom "greenhaven/internal/domain/inquiry"
)

const defaultInquiryListLimit = 100

// InquiryRepositoryFS implements inquiry.Repository on Firestore.
//
// Collection design:
// - collection: inquiries
// - docId: inquiry id (uuid assigned by the usecase)
type InquiryRepositoryFS struct {
	Client *firestore.Client
}

func NewInquiryRepositoryFS(client *firestore.Client) *InquiryRepositoryFS {
	return &InquiryRepositoryFS{Client: client}
}

func (r *InquiryRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("inquiries")
}

func (r *InquiryRepositoryFS) Create(ctx context.Context, q *inquirydom.Inquiry) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if q == nil || strings.TrimSpace(q.ID) == "" {
		return inquirydom.ErrInvalidInquiry
	}

	_, err := r.col().Doc(strings.TrimSpace(q.ID)).Set(ctx, map[string]any{
		"name":      q.Name,
		"email":     q.Email,
		"subject":   q.Subject,
		"body":      q.Body,
		"status":    string(q.Status),
		"createdAt": q.CreatedAt,
		"updatedAt": q.UpdatedAt,
	})
	return err
}

func (r *InquiryRepositoryFS) GetByID(ctx context.Context, id string) (*inquirydom.Inquiry, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, inquirydom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, inquirydom.ErrNotFound
		}
		return nil, err
	}
	return inquiryFromSnapshot(snap), nil
}

func (r *InquiryRepositoryFS) List(ctx context.Context, status inquirydom.Status, limit int) ([]inquirydom.Inquiry, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	if limit < 1 {
		limit = defaultInquiryListLimit
	}

	q := r.col().Query
	if s := strings.TrimSpace(string(status)); s != "" {
		q = q.Where("status", "==", s)
	}

	it := q.
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer it.Stop()

	var out []inquirydom.Inquiry
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *inquiryFromSnapshot(snap))
	}
	return out, nil
}

func (r *InquiryRepositoryFS) SetStatus(ctx context.Context, id string, status inquirydom.Status) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return inquirydom.ErrNotFound
	}

	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil && isNotFound(err) {
		return inquirydom.ErrNotFound
	}
	return err
}

func inquiryFromSnapshot(snap *firestore.DocumentSnapshot) *inquirydom.Inquiry {
	q := &inquirydom.Inquiry{ID: snap.Ref.ID, Status: inquirydom.StatusOpen}

	raw := snap.Data()
	if raw == nil {
		return q
	}

	q.Name = asString(raw["name"])
	q.Email = asString(raw["email"])
	q.Subject = asString(raw["subject"])
	q.Body = asString(raw["body"])
	if s := strings.ToLower(asString(raw["status"])); s == string(inquirydom.StatusClosed) {
		q.Status = inquirydom.StatusClosed
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		q.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		q.UpdatedAt = t
	}
	return q
}
