package pagination

// Metadata is a snapshot of a paginator's inputs and derived values.
type Metadata struct {
	CurrentPage    int   `json:"current_page" yaml:"current_page"`       // Current page number (1-based)
	Limit          int   `json:"limit" yaml:"limit"`                     // Items per page, 0 shows everything
	ItemCount      int   `json:"item_count" yaml:"item_count"`           // Total number of items across all pages
	MidRange       int   `json:"mid_range" yaml:"mid_range"`             // Width of the page-number window
	NumPages       int   `json:"num_pages" yaml:"num_pages"`             // Calculated total number of pages
	Offset         int   `json:"offset" yaml:"offset"`                   // Zero-based index of the first row
	Range          []int `json:"range" yaml:"range"`                     // Page numbers to render as links
	CountBeginning int   `json:"count_beginning" yaml:"count_beginning"` // First item number shown
	CountEnd       int   `json:"count_end" yaml:"count_end"`             // Last item number shown
}

// PageLink is a single entry of a rendered page list.
type PageLink struct {
	Page    int    `json:"page" yaml:"page"`
	URL     string `json:"url" yaml:"url"`
	Current bool   `json:"current" yaml:"current"`
}
