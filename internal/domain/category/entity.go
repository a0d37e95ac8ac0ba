package category

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("category: not found")
	ErrInvalidCategory = errors.New("category: invalid")
)

// Category is one node of the derived taxonomy.
//   - docId = Slug (Firestore collection "categories")
//   - Count is a denormalized cache, only as fresh as the last extraction run.
type Category struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Count    int    `json:"count"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(name, imageURL string, count int, now time.Time) (*Category, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrInvalidCategory
	}
	if count < 0 {
		return nil, ErrInvalidCategory
	}
	return &Category{
		Slug:      Slugify(n),
		Name:      n,
		ImageURL:  strings.TrimSpace(imageURL),
		Count:     count,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Slugify normalizes a free-text label into a URL-safe slug:
// lowercase, whitespace runs become a single hyphen, anything outside
// [a-z0-9-] is dropped. Deterministic: equal labels (up to case and
// surrounding whitespace) always yield the same slug.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '-', r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		default:
			// dropped
		}
	}

	return strings.Trim(b.String(), "-")
}

// IsPlaceholderImage reports whether url is empty or a known placeholder,
// i.e. eligible for replacement by the extraction job.
func IsPlaceholderImage(url string) bool {
	u := strings.ToLower(strings.TrimSpace(url))
	if u == "" {
		return true
	}
	return strings.Contains(u, "placeholder") || strings.Contains(u, "no-image")
}
