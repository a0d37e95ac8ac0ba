package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	productdom "greenhaven/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository on Firestore.
//
// Collection design:
// - collection: products
// - docId: product id (auto-assigned on create)
// - details stored as a plain map; values outside string|bool|number are
//   dropped on read (closed value set at the boundary).
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, productdom.ErrNotFound
		}
		return nil, err
	}
	return productFromSnapshot(snap), nil
}

// GetByLink resolves a storefront slug. Uniqueness of link is not enforced;
// the first match wins.
func (r *ProductRepositoryFS) GetByLink(ctx context.Context, link string) (*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, productdom.ErrNotFound
	}

	it := r.col().Where("link", "==", link).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, productdom.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return productFromSnapshot(snap), nil
}

// GetByIDs fetches products one by one; missing ids are skipped.
// Sequential round-trips are acceptable at cart sizes.
func (r *ProductRepositoryFS) GetByIDs(ctx context.Context, ids []string) (map[string]*productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}

	out := map[string]*productdom.Product{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := out[id]; ok {
			continue
		}
		snap, err := r.col().Doc(id).Get(ctx)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, err
		}
		out[id] = productFromSnapshot(snap)
	}
	return out, nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p *productdom.Product) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if p == nil {
		return productdom.ErrInvalidProduct
	}

	ref := r.col().NewDoc()
	if strings.TrimSpace(p.ID) != "" {
		ref = r.col().Doc(strings.TrimSpace(p.ID))
	}
	p.ID = ref.ID

	_, err := ref.Set(ctx, productToDoc(p))
	return err
}

func (r *ProductRepositoryFS) Update(ctx context.Context, p *productdom.Product) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return productdom.ErrInvalidProduct
	}

	_, err := r.col().Doc(strings.TrimSpace(p.ID)).Set(ctx, productToDoc(p))
	return err
}

func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errNilClient
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrNotFound
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// ListPage pushes equality filters to Firestore, orders by the sort field
// with a document-id tiebreaker, and resumes after startAfterID.
func (r *ProductRepositoryFS) ListPage(ctx context.Context, f productdom.Filter, s productdom.Sort, limit int, startAfterID string) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}
	if limit < 1 {
		limit = 1
	}

	q := r.col().Query

	if c := strings.TrimSpace(f.Category); c != "" {
		q = q.Where("category", "==", c)
	}
	if sc := strings.TrimSpace(f.SubCategory); sc != "" {
		q = q.Where("subCategory", "==", sc)
	}
	if b := strings.TrimSpace(f.Brand); b != "" {
		q = q.Where("brand", "==", b)
	}
	switch strings.TrimSpace(f.Special) {
	case "newArrival":
		q = q.Where("newArrival", "==", true)
	case "featured":
		q = q.Where("featured", "==", true)
	case "popular":
		q = q.Where("popular", "==", true)
	}

	field := sortFieldName(s.Field)
	dir := firestore.Asc
	if s.Desc {
		dir = firestore.Desc
	}
	q = q.OrderBy(field, dir).OrderBy(firestore.DocumentID, dir)

	if cur := strings.TrimSpace(startAfterID); cur != "" {
		snap, err := r.col().Doc(cur).Get(ctx)
		if err != nil {
			if !isNotFound(err) {
				return nil, err
			}
			// cursor doc vanished; restart from the top rather than fail
		} else {
			q = q.StartAfter(sortFieldValue(snap, field), snap.Ref.ID)
		}
	}

	it := q.Limit(limit).Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *productFromSnapshot(snap))
	}
	return out, nil
}

// ListAll scans the collection (facet discovery / extraction job only).
func (r *ProductRepositoryFS) ListAll(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errNilClient
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []productdom.Product
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *productFromSnapshot(snap))
	}
	return out, nil
}

func sortFieldName(field string) string {
	switch strings.TrimSpace(field) {
	case "price":
		return "priceCents"
	case "title":
		return "title"
	default:
		return "createdAt"
	}
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

func productToDoc(p *productdom.Product) map[string]any {
	doc := map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"imageUrl":    p.ImageURL,
		"priceCents":  p.PriceCents,
		"category":    p.Category,
		"subCategory": p.SubCategory,
		"type":        p.ProductType,
		"link":        p.Link,
		"brand":       p.Brand,
		"stock": map[string]any{
			"available": p.Stock.Available,
			"quantity":  p.Stock.Quantity,
		},
		"featured":   p.Featured,
		"newArrival": p.NewArrival,
		"popular":    p.Popular,
		"createdAt":  p.CreatedAt,
		"updatedAt":  p.UpdatedAt,
	}
	if wire := productdom.DetailsToWire(p.Details); wire != nil {
		doc["details"] = wire
	}
	return doc
}

// productFromSnapshot parses raw document data with backward compatibility:
// the docId is the source of truth for ID, and loosely-typed fields are
// coerced instead of failing the decode.
func productFromSnapshot(snap *firestore.DocumentSnapshot) *productdom.Product {
	p := &productdom.Product{ID: snap.Ref.ID}

	raw := snap.Data()
	if raw == nil {
		return p
	}

	p.Title = asString(raw["title"])
	p.Description = asString(raw["description"])
	p.ImageURL = asString(raw["imageUrl"])
	p.PriceCents = asInt64(raw["priceCents"])
	p.Category = asString(raw["category"])
	p.SubCategory = asString(raw["subCategory"])
	p.ProductType = asString(raw["type"])
	p.Link = asString(raw["link"])
	p.Brand = asString(raw["brand"])
	p.Featured = asBool(raw["featured"])
	p.NewArrival = asBool(raw["newArrival"])
	p.Popular = asBool(raw["popular"])

	if st := asStringMap(raw["stock"]); st != nil {
		p.Stock = productdom.Stock{
			Available: asBool(st["available"]),
			Quantity:  asInt(st["quantity"]),
		}
	}

	p.Details = productdom.ParseDetails(asStringMap(raw["details"]))

	if t, ok := asTime(raw["createdAt"]); ok {
		p.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		p.UpdatedAt = t
	} else {
		p.UpdatedAt = p.CreatedAt
	}

	return p
}
