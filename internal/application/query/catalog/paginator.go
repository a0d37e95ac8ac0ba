package catalogQuery

import "context"

// Paginator walks a fixed filter set forward and backward.
//
// The backend has no native backward cursor, so backward navigation replays a
// stored snapshot of cursors per page index: cursors[i] holds the last
// document id of page i. Memory traded for correctness.
type Paginator struct {
	q      *CatalogQuery
	params Params

	cursors []string // cursors[i] = last raw doc id of page i (0-based)
	page    int      // next page index to fetch
	done    bool     // no more forward pages
}

func NewPaginator(q *CatalogQuery, params Params) *Paginator {
	params.StartAfterID = ""
	return &Paginator{q: q, params: params}
}

// Next fetches the next forward page. Returns (Result{}, false, nil) when the
// end has been reached.
func (p *Paginator) Next(ctx context.Context) (Result, bool, error) {
	if p == nil || p.q == nil {
		return Result{}, false, nil
	}
	if p.done {
		return Result{}, false, nil
	}

	params := p.params
	if p.page > 0 {
		params.StartAfterID = p.cursors[p.page-1]
	}

	res, err := p.q.Page(ctx, params)
	if err != nil {
		return Result{}, false, err
	}
	if res.RawCount == 0 {
		p.done = true
		return Result{}, false, nil
	}

	// record/overwrite this page's forward cursor
	if p.page < len(p.cursors) {
		p.cursors[p.page] = res.LastID
	} else {
		p.cursors = append(p.cursors, res.LastID)
	}
	p.page++

	if !res.HasMore {
		p.done = true
	}
	return res, true, nil
}

// Prev re-fetches the previous page from the stored cursor snapshot.
// Returns false when already on the first page.
func (p *Paginator) Prev(ctx context.Context) (Result, bool, error) {
	if p == nil || p.q == nil || p.page <= 1 {
		return Result{}, false, nil
	}

	// step back behind the previous page and replay it
	p.page -= 2
	p.done = false
	return p.Next(ctx)
}

// PageIndex returns the 1-based index of the page most recently returned
// (0 before the first fetch).
func (p *Paginator) PageIndex() int {
	if p == nil {
		return 0
	}
	return p.page
}
