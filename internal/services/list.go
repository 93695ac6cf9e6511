package services

// ListParams is a validated pagination/sort window. OrderColumn is already
// resolved from the per-resource sort-key enumeration by the HTTP layer.
type ListParams struct {
	Skip        int
	Take        int
	OrderColumn string
	SortOrder   string
}

// DefaultListParams is the window applied when a request specifies nothing.
func DefaultListParams() ListParams {
	return ListParams{
		Skip:        0,
		Take:        10,
		OrderColumn: "id",
		SortOrder:   "asc",
	}
}

func (p ListParams) order() string {
	return p.OrderColumn + " " + p.SortOrder
}
