package pagination

import "math"

// Paginator derives page counts, offsets and page ranges from the current
// page, the per-page limit and the total item count.
//
// Inputs may be set in any order and overwritten at will. Derived values
// are computed on the first read after an input changes. A Paginator is not
// safe for concurrent use; create one per request.
type Paginator struct {
	cfg      Config
	source   ParamSource
	rewriter URLRewriter

	currentPage int
	limit       int
	limitSet    bool
	itemCount   int
	midRange    int

	derived *derivation
}

type derivation struct {
	currentPage int
	limit       int
	midRange    int
	numPages    int
	offset      int
	window      Window
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithConfig sets the defaults used for unset inputs. Zero fields keep
// their DefaultConfig values.
func WithConfig(cfg Config) Option {
	return func(p *Paginator) {
		p.cfg = cfg.WithDefaults()
	}
}

// WithParamSource sets where the current page is read from when it was not
// set explicitly.
func WithParamSource(src ParamSource) Option {
	return func(p *Paginator) {
		p.source = src
	}
}

// WithURLRewriter sets the rewriter used by URL and Links. An empty Param
// takes the configured page parameter.
func WithURLRewriter(rw URLRewriter) Option {
	return func(p *Paginator) {
		p.rewriter = rw
	}
}

// New creates a Paginator.
func New(opts ...Option) *Paginator {
	p := &Paginator{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(p)
	}
	if p.rewriter.Param == "" {
		p.rewriter.Param = p.cfg.PageParam
	}
	return p
}

// SetItemCount sets the total number of items available.
func (p *Paginator) SetItemCount(n int) {
	p.itemCount = CoerceInt(n)
	p.derived = nil
}

// SetCurrentPage sets the current page. Zero means unset.
func (p *Paginator) SetCurrentPage(n int) {
	p.currentPage = CoerceInt(n)
	p.derived = nil
}

// SetLimit sets the number of items per page. Zero shows every item on one page.
func (p *Paginator) SetLimit(n int) {
	p.limit = CoerceInt(n)
	p.limitSet = true
	p.derived = nil
}

// SetMidRange sets how many page numbers the range holds.
func (p *Paginator) SetMidRange(n int) {
	p.midRange = CoerceInt(n)
	p.derived = nil
}

// Reset clears every input so the Paginator can be reused.
func (p *Paginator) Reset() {
	p.currentPage = 0
	p.limit = 0
	p.limitSet = false
	p.itemCount = 0
	p.midRange = 0
	p.derived = nil
}

// ItemCount returns the total number of items.
func (p *Paginator) ItemCount() int {
	return p.itemCount
}

// Limit returns the items per page, or the configured default when no
// limit was set.
func (p *Paginator) Limit() int {
	return p.derive().limit
}

// MidRange returns the range width, or the configured default when the
// stored value is below 1.
func (p *Paginator) MidRange() int {
	return p.derive().midRange
}

// CurrentPage returns the page set with SetCurrentPage. When none was set
// the page parameter of the ParamSource is used, then the configured
// default page.
func (p *Paginator) CurrentPage() int {
	return p.derive().currentPage
}

// NumPages returns the total number of pages. It is always at least 1.
func (p *Paginator) NumPages() int {
	return p.derive().numPages
}

// Offset returns the zero-based index of the first row on the current page.
func (p *Paginator) Offset() int {
	return p.derive().offset
}

// Range returns the page numbers to display, in ascending order.
func (p *Paginator) Range() []int {
	return p.derive().window.Pages()
}

// StartRange returns the first page number of Range.
func (p *Paginator) StartRange() int {
	return p.derive().window.Start
}

// EndRange returns the last page number of Range.
func (p *Paginator) EndRange() int {
	return p.derive().window.End
}

// CountBeginning returns the number of the first item shown. On a page
// past the last one it exceeds CountEnd.
func (p *Paginator) CountBeginning() int {
	return countBeginning(p.Offset())
}

// CountEnd returns the number of the last item shown. It never exceeds
// ItemCount.
func (p *Paginator) CountEnd() int {
	d := p.derive()
	return CalculateCountEnd(d.offset, d.limit, p.itemCount)
}

// HasPrevious reports whether a page precedes the current one.
func (p *Paginator) HasPrevious() bool {
	return p.CurrentPage() > 1
}

// HasNext reports whether a page follows the current one.
func (p *Paginator) HasNext() bool {
	return p.CurrentPage() < p.NumPages()
}

// PreviousPage returns the page before the current one, or 1.
func (p *Paginator) PreviousPage() int {
	return max(p.CurrentPage()-1, 1)
}

// NextPage returns the page after the current one, or the last page.
func (p *Paginator) NextPage() int {
	d := p.derive()
	if d.currentPage >= d.numPages {
		return d.numPages
	}
	return d.currentPage + 1
}

// URL rewrites rawURL to point at page.
func (p *Paginator) URL(rawURL string, page int) string {
	return p.rewriter.Rewrite(rawURL, page)
}

// Links returns one link per page of Range, built from rawURL.
func (p *Paginator) Links(rawURL string) []PageLink {
	d := p.derive()
	pages := d.window.Pages()
	links := make([]PageLink, 0, len(pages))
	for _, page := range pages {
		links = append(links, PageLink{
			Page:    page,
			URL:     p.rewriter.Rewrite(rawURL, page),
			Current: page == d.currentPage,
		})
	}
	return links
}

// Summary returns a snapshot of every input and derived value.
func (p *Paginator) Summary() Metadata {
	d := p.derive()
	return Metadata{
		CurrentPage:    d.currentPage,
		Limit:          d.limit,
		ItemCount:      p.itemCount,
		MidRange:       d.midRange,
		NumPages:       d.numPages,
		Offset:         d.offset,
		Range:          d.window.Pages(),
		CountBeginning: countBeginning(d.offset),
		CountEnd:       CalculateCountEnd(d.offset, d.limit, p.itemCount),
	}
}

func (p *Paginator) derive() *derivation {
	if p.derived != nil {
		return p.derived
	}

	d := &derivation{
		currentPage: p.currentPage,
		limit:       p.limit,
		midRange:    p.midRange,
	}
	if d.currentPage == 0 {
		if page, ok := pageFromSource(p.source, p.cfg.PageParam); ok && page > 0 {
			d.currentPage = page
		} else {
			d.currentPage = p.cfg.DefaultPage
		}
	}
	if !p.limitSet {
		d.limit = p.cfg.DefaultLimit
	}
	if d.midRange < 1 {
		d.midRange = p.cfg.DefaultMidRange
	}

	d.numPages = CalculateTotalPages(p.itemCount, d.limit)
	d.offset = CalculateOffset(d.currentPage, d.limit)
	d.window = CalculateWindow(d.currentPage, d.midRange, d.numPages)
	recordWindow(d.window)

	p.derived = d
	return d
}

func countBeginning(offset int) int {
	if offset == math.MaxInt {
		return offset
	}
	return offset + 1
}
